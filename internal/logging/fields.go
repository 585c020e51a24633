package logging

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Section tags a log entry with a pricing section type
func Section(sectionType string) zap.Field {
	return zap.String("section", sectionType)
}

// Decimal logs a decimal amount by its exact string form
func Decimal(key string, d decimal.Decimal) zap.Field {
	return zap.Stringer(key, d)
}
