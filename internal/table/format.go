package table

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale         = "en-GB"
	DefaultCurrencySymbol = "£"
)

// Formatter renders record values for display.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter parses a BCP 47 locale tag; an empty tag or symbol falls back to the defaults.
func NewFormatter(locale, currency string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if currency == "" {
		currency = DefaultCurrencySymbol
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}, nil
}

// DefaultFormatter formats for en-GB with a pound sign.
func DefaultFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.BritishEnglish), currency: DefaultCurrencySymbol}
}

// Percent renders the value as-is followed by a literal percent sign: 80 -> "80%".
func (f *Formatter) Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// Amount renders the value with grouping separators behind the currency glyph: 5000 -> "£5,000".
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.currency + f.printer.Sprint(number.Decimal(d.InexactFloat64()))
}
