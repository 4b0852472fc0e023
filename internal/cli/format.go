// internal/cli/format.go
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount in cents as Brazilian currency, e.g. 123456
// becomes "R$ 1234,56". The core only ever exposes raw cents; converting to
// reais is strictly a display concern.
func FormatBRL(cents int64) string {
	reais := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return "R$ " + strings.Replace(reais.StringFixed(2), ".", ",", 1)
}
