package postgres

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
)

// readErr — ошибка чтения; уже классифицированные ошибки не переоборачиваем.
func readErr(op string, err error) error {
	if errors.Is(err, domain.ErrConnection) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrConnection, op, err)
}
