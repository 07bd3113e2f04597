package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wc_paymeta/internal/domain"
	"github.com/Gunvolt24/wc_paymeta/internal/ports"
	"github.com/Gunvolt24/wc_paymeta/pkg/validate"
)

type options struct {
	path   string
	format validate.InputFormat
}

// lineOutcome — результат одной строки входа.
type lineOutcome struct {
	Line   int                 `json:"line"`
	Result domain.UpdateResult `json:"result"`
}

type summary struct {
	valid, invalid, applied, failed, updated int
}

func (s summary) String() string {
	return fmt.Sprintf("valid=%d invalid=%d applied=%d failed=%d updated_orders=%d",
		s.valid, s.invalid, s.applied, s.failed, s.updated)
}

// run — updater == nil: dry-run (печать канонических валидных строк).
// Код выхода: 0 — всё применено, 1 — были невалидные или неуспешные строки, 2 — вход не прочитан.
func run(ctx context.Context, opts options, updater ports.PaymentRefUpdater, out, errOut io.Writer) int {
	var sum summary
	enc := json.NewEncoder(out)

	_, err := validate.ScanFile(ctx, validate.NewUpdateValidator(), opts.path, opts.format,
		func(lineNo int, req validate.UpdateRequest, lineErr error) error {
			if lineErr != nil {
				sum.invalid++
				if updater == nil {
					fmt.Fprintf(errOut, "line %d: %v\n", lineNo, lineErr)
					return nil
				}
				return enc.Encode(lineOutcome{
					Line:   lineNo,
					Result: domain.Fail[domain.UpdateData](domain.ErrorTypeValidation, "invalid input line", lineErr),
				})
			}

			sum.valid++
			if updater == nil {
				return enc.Encode(req)
			}

			res := updater.UpdatePaymentReference(ctx, req.Email, req.PaymentReference)
			if res.Success {
				sum.applied++
				sum.updated += res.Data.UpdatedCount
			} else {
				sum.failed++
			}
			return enc.Encode(lineOutcome{Line: lineNo, Result: res})
		})
	if err != nil {
		fmt.Fprintf(errOut, "reassign: %v (%s)\n", err, sum)
		return 2
	}

	fmt.Fprintf(errOut, "reassign done (%s)\n", sum)
	if sum.invalid > 0 || sum.failed > 0 {
		return 1
	}
	return 0
}
