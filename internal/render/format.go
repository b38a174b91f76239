// Package render derives presentation values from an analysis payload and
// composes the HTML fragments for the dashboard's mount points. All section
// renderers are pure: payload in, markup out. View models live for one render
// and are never cached.
package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tickerlens/tickerlens/internal/models"
)

// Money formats a value with a currency prefix and exactly two decimal places.
func Money(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Num2 formats a plain numeric display field to two decimal places.
func Num2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Percent renders a 0-1 confidence fraction as an integer percentage.
// The fraction is scaled at render time only, never persisted scaled.
func Percent(fraction float64) string {
	return decimal.NewFromFloat(fraction * 100).StringFixed(0) + "%"
}

// PercentValue renders a value already expressed in percent units, to two
// decimals (4.25 -> "4.25%"). No rescaling occurs; the momentum indicators
// arrive in percent units, unlike the 0-1 confidence fractions.
func PercentValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// SignalClass maps a polarity to its CSS class (green/red/gray styling).
func SignalClass(s models.Signal) string {
	return "signal-" + string(s)
}

// BadgeClass maps a momentum value's sign to a polarity badge class.
func BadgeClass(v float64) string {
	switch {
	case v > 0:
		return "badge-positive"
	case v < 0:
		return "badge-negative"
	default:
		return "badge-neutral"
	}
}

// HumanizeAgent turns an agent identifier into a display name: the "_agent"
// suffix is stripped and the underscore-delimited words are capitalized and
// joined with spaces ("sentiment_analysis_agent" -> "Sentiment Analysis").
func HumanizeAgent(id string) string {
	id = strings.TrimSuffix(id, "_agent")
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
