package validate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

// JSONLResult — статистика обработки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// LineFunc — обработчик строки; err != nil — строка невалидна (req пустой).
// Ошибка, возвращённая обработчиком, прерывает чтение.
type LineFunc func(lineNo int, req UpdateRequest, err error) error

// ScanJSONL — читает запросы построчно, пустые строки пропускает, каждую строку валидирует.
func ScanJSONL(ctx context.Context, validator ports.UpdateRequestValidator, ir io.Reader, fn LineFunc) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на длинные строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return res, err
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		req, err := UpdateRequestFromJSON(ctx, validator, line)
		if err != nil {
			res.InvalidLinesCount++
		} else {
			res.ValidLinesCount++
		}
		if fnErr := fn(lineNo, req, err); fnErr != nil {
			return res, fnErr
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
