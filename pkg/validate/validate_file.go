package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wc_paymeta/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ResolveFormat — auto по расширению файла; stdin и неизвестное расширение — JSONL.
func ResolveFormat(filePath string, format InputFormat) InputFormat {
	if format != FormatAuto {
		return format
	}
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		return FormatJSON
	}
	return FormatJSONL
}

// ScanFile — как ScanJSONL, но читает файл; JSON-формат — массив запросов.
// filePath == "" — stdin.
func ScanFile(ctx context.Context, validator ports.UpdateRequestValidator, filePath string, format InputFormat, fn LineFunc) (JSONLResult, error) {
	var in io.Reader = os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("open file: %w", err)
		}
		defer file.Close()
		in = file
	}

	switch ResolveFormat(filePath, format) {
	case FormatJSONL:
		return ScanJSONL(ctx, validator, in, fn)
	case FormatJSON:
		return scanJSONArray(ctx, validator, in, fn)
	default:
		return JSONLResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// scanJSONArray — [{...}, {...}]; номер «строки» — индекс элемента с единицы.
func scanJSONArray(ctx context.Context, validator ports.UpdateRequestValidator, in io.Reader, fn LineFunc) (JSONLResult, error) {
	var (
		res   JSONLResult
		items []json.RawMessage
	)
	if err := json.NewDecoder(in).Decode(&items); err != nil {
		return res, fmt.Errorf("decode json array: %w", err)
	}
	for i, raw := range items {
		req, err := UpdateRequestFromJSON(ctx, validator, raw)
		if err != nil {
			res.InvalidLinesCount++
		} else {
			res.ValidLinesCount++
		}
		if fnErr := fn(i+1, req, err); fnErr != nil {
			return res, fnErr
		}
	}
	return res, nil
}
