//go:generate mockgen -source=../order_store.go      -destination=./mock_order_store.go      -package=mocks
//go:generate mockgen -source=../meta_tx.go          -destination=./mock_meta_tx.go          -package=mocks
//go:generate mockgen -source=../store_health.go     -destination=./mock_store_health.go     -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../services.go         -destination=./mock_services.go         -package=mocks
//go:generate mockgen -source=../event_dedupe.go     -destination=./mock_event_dedupe.go     -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
