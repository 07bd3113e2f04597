package validate

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

// Проверка, что UpdateValidator удовлетворяет интерфейсу UpdateRequestValidator.
var _ ports.UpdateRequestValidator = (*UpdateValidator)(nil)

// UpdateValidator — проверка входа обновления платёжной ссылки.
// Любая проблема — domain.ErrInvalidInput с обёрнутой причиной.
type UpdateValidator struct{}

// NewUpdateValidator — конструктор UpdateValidator.
func NewUpdateValidator() *UpdateValidator { return &UpdateValidator{} }

// ValidateUpdate — email обязателен и должен быть адресом без display name;
// ссылка обязательна, её формат не проверяем (источник истины — платёжный провайдер).
func (v *UpdateValidator) ValidateUpdate(_ context.Context, email, reference string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: payment_reference обязателен", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateEmail — адрес клиента в том виде, в каком он лежит в магазине:
// непустой, без пробелов и управляющих символов, ровно один "@" с непустыми частями.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fmt.Errorf("%w: email обязателен", domain.ErrInvalidInput)
	}
	if strings.IndexFunc(trimmed, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return fmt.Errorf("%w: email содержит пробелы", domain.ErrInvalidInput)
	}
	local, host, ok := strings.Cut(trimmed, "@")
	if !ok || local == "" || host == "" || strings.Contains(host, "@") {
		return fmt.Errorf("%w: email некорректен", domain.ErrInvalidInput)
	}
	return nil
}
