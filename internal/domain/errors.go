package domain

import "errors"

// Базовые ошибки (sentinel errors). Репозиторий оборачивает в них причину через %w,
// usecase раскладывает их по категориям конверта.
var (
	ErrConnection    = errors.New("store connection failed")
	ErrTransaction   = errors.New("store transaction failed")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidInput  = errors.New("invalid input")
)
