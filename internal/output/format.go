// Package output renders engine results for humans and machines: a console
// report, JSON, and CSV, behind a registry keyed by format name.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Formatter renders engine results in one output format.
type Formatter interface {
	FormatInvestment(result *InvestmentReport) ([]byte, error)
	FormatInheritance(result *InheritanceReport) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil for an unknown format.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatKRW renders a whole-KRW amount with thousands grouping.
func FormatKRW(amount decimal.Decimal) string {
	s := amount.Floor().String()
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
		if len(s) > lead {
			sb.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		sb.WriteString(s[i : i+3])
		if i+3 < len(s) {
			sb.WriteByte(',')
		}
	}
	return sb.String() + "원"
}

// FormatKRWFloat renders a float64 KRW amount with thousands grouping.
func FormatKRWFloat(amount float64) string {
	return FormatKRW(decimal.NewFromFloat(amount))
}

// FormatPercent renders a fractional rate (0.064) as a percentage string.
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate * 100).Round(2).String() + "%"
}
