package engine

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders numbers with locale-aware grouping.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

// Int formats n with digit grouping ("12,345" in English).
func (f Formatter) Int(n int) string {
	return f.p.Sprintf("%d", n)
}

// Measure formats v as an integer when it is whole, otherwise with two decimals.
func (f Formatter) Measure(v float64) string {
	if v == float64(int64(v)) {
		return f.p.Sprintf("%d", int64(v))
	}
	return f.p.Sprintf("%.2f", v)
}

// LabelForKey turns a snake_case key into a title-cased label ("average_age" → "Average Age").
func LabelForKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "id" {
			words[i] = "ID"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
