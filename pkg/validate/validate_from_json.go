package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

// UpdateRequest — запрос на смену платёжной ссылки (сообщение Kafka, строка JSONL).
type UpdateRequest struct {
	Email            string `json:"email"`
	PaymentReference string `json:"payment_reference"`
	EventID          string `json:"event_id,omitempty"`
}

// DecodeUpdateRequest — строгий разбор JSON: неизвестные поля и хвост после объекта — ошибка.
// Ошибки разбора тоже оборачиваются в domain.ErrInvalidInput.
func DecodeUpdateRequest(raw []byte) (UpdateRequest, error) {
	var req UpdateRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return UpdateRequest{}, fmt.Errorf("%w: invalid json: %w", domain.ErrInvalidInput, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return UpdateRequest{}, fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidInput)
	}
	return req, nil
}

// UpdateRequestFromJSON — разбор и валидация запроса; email приводится к виду без пробелов по краям.
func UpdateRequestFromJSON(ctx context.Context, validator ports.UpdateRequestValidator, raw []byte) (UpdateRequest, error) {
	req, err := DecodeUpdateRequest(raw)
	if err != nil {
		return UpdateRequest{}, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.ValidateUpdate(ctx, req.Email, req.PaymentReference); err != nil {
		return UpdateRequest{}, err
	}
	return req, nil
}
