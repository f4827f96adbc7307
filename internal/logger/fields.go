package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldDocument is the structured log field key for the analyzed document name.
	FieldDocument = "document"
	// FieldMethod is the structured log field key for the extraction method.
	FieldMethod = "extract_method"
	// FieldPage is the structured log field key for a zero-based page index.
	FieldPage = "page"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// DocumentFields returns standard zap fields that describe the analyzed document.
// Empty values are ignored to keep log entries compact when information is missing.
func DocumentFields(document, method string) []zap.Field {
	return StringFields(
		StringField{Key: FieldDocument, Value: document},
		StringField{Key: FieldMethod, Value: method},
	)
}

// WithDocumentFields attaches the document fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithDocumentFields(logger *zap.Logger, document, method string) *zap.Logger {
	return WithFields(logger, DocumentFields(document, method)...)
}

// Page returns the page field for a zero-based page index.
func Page(index int) zap.Field {
	return zap.Int(FieldPage, index)
}
