package domain

// ErrorType — машинно-проверяемая категория ошибки в конверте ответа.
type ErrorType string

const (
	ErrorTypeConnection  ErrorType = "connection"
	ErrorTypeTransaction ErrorType = "transaction"
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeNotFound    ErrorType = "not_found"
)

// Result — единый конверт ответа любой публичной операции.
// При Success=false всегда заполнены Error и ErrorType.
type Result[T any] struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data"`
	Error     string    `json:"error,omitempty"`
	ErrorType ErrorType `json:"error_type,omitempty"`
}

// OK — успешный конверт с полезной нагрузкой.
func OK[T any](message string, data T) Result[T] {
	return Result[T]{Success: true, Message: message, Data: data}
}

// Fail — конверт ошибки; data остаётся нулевым значением.
func Fail[T any](kind ErrorType, message string, err error) Result[T] {
	detail := message
	if err != nil {
		detail = err.Error()
	}
	return Result[T]{Success: false, Message: message, Error: detail, ErrorType: kind}
}

// UpdateData — полезная нагрузка результата обновления платёжной ссылки.
type UpdateData struct {
	Email            string  `json:"email"`
	NewReference     string  `json:"new_payment_reference"`
	OrdersFound      int     `json:"orders_found"`
	UpdatedCount     int     `json:"updated_count"`
	AffectedOrderIDs []int64 `json:"affected_order_ids"`
}

// UpdateResult — результат UpdatePaymentReference.
type UpdateResult = Result[UpdateData]

// ConnectionInfo — диагностика проверки соединения.
type ConnectionInfo struct {
	Host          string `json:"host"`
	Database      string `json:"database"`
	ServerVersion string `json:"server_version,omitempty"`
	LatencyMS     int64  `json:"latency_ms"`
}
