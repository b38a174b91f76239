package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// momentumSample mirrors the engine's emission: the two indicators are
// {"signal","value"} objects whose values are percent-units strings.
const momentumSample = `{
	"price_momentum": {"signal": "bullish", "value": "4.25"},
	"volume_momentum": {"signal": "bearish", "value": "-12.5"},
	"rsi": 61.2,
	"current_price": 98.2,
	"target_price": 104.1,
	"support_level": 95.0,
	"resistance_level": 106.5,
	"stop_loss": 93.3,
	"signal": "bullish",
	"timeframe": "1-2 weeks",
	"confidence": 0.68,
	"reasoning": ["RSI recovering from oversold", "Volume contracting on dips"]
}`

func TestMomentumSection_ThreeDistinctStates(t *testing.T) {
	reg := NewAssetRegistry()

	absent := MomentumSection(nil, reg)
	empty := MomentumSection(momentumFromJSON(t, `{}`), reg)
	full := MomentumSection(momentumFromJSON(t, momentumSample), reg)

	assert.NotEqual(t, absent, empty)
	assert.NotEqual(t, absent, full)
	assert.NotEqual(t, empty, full)

	assert.Contains(t, absent, "No momentum analysis available")
	assert.Contains(t, empty, "Momentum analysis is present but contains no data")
	assert.Contains(t, full, "Momentum Indicators")
}

func TestMomentumSection_FullPanel(t *testing.T) {
	out := MomentumSection(momentumFromJSON(t, momentumSample), NewAssetRegistry())

	assert.Contains(t, out, "4.25%")
	assert.Contains(t, out, "-12.50%")
	assert.Contains(t, out, "badge-positive")
	assert.Contains(t, out, "badge-negative")
	assert.Contains(t, out, "61.20")
	assert.Contains(t, out, "$98.20")
	assert.Contains(t, out, "$93.30")
	assert.Contains(t, out, "BULLISH")
	assert.Contains(t, out, "signal-bullish")
	assert.Contains(t, out, "1-2 weeks")
	assert.Contains(t, out, "68%")
}

func TestMomentumSection_IndicatorObjectShape(t *testing.T) {
	// Indicator values are already percents; they must render verbatim with
	// a % suffix, and the badge follows the indicator's own signal.
	out := MomentumSection(momentumFromJSON(t, `{
		"price_momentum": {"signal": "bullish", "value": "4.25"},
		"volume_momentum": {"signal": "bearish", "value": "-12.5"},
		"signal": "neutral"
	}`), NewAssetRegistry())

	assert.Contains(t, out, `<tr><td>Price Momentum</td><td><span class="badge badge-positive">4.25%</span></td></tr>`)
	assert.Contains(t, out, `<tr><td>Volume Momentum</td><td><span class="badge badge-negative">-12.50%</span></td></tr>`)
	assert.NotContains(t, out, "425.00%")
	assert.NotContains(t, out, "0.00425")
}

func TestMomentumSection_IndicatorBadgeFallsBackToSign(t *testing.T) {
	// Bare-number indicators carry no signal, so polarity comes from the sign.
	out := MomentumSection(momentumFromJSON(t, `{
		"price_momentum": 4.25,
		"volume_momentum": -12.5,
		"signal": "neutral"
	}`), NewAssetRegistry())

	assert.Contains(t, out, `<span class="badge badge-positive">4.25%</span>`)
	assert.Contains(t, out, `<span class="badge badge-negative">-12.50%</span>`)
}

func TestMomentumSection_NeutralIndicatorSignalWins(t *testing.T) {
	// A declared neutral signal outranks a nonzero value's sign.
	out := MomentumSection(momentumFromJSON(t, `{
		"price_momentum": {"signal": "neutral", "value": "4.25"},
		"signal": "neutral"
	}`), NewAssetRegistry())

	assert.Contains(t, out, `<span class="badge badge-neutral">4.25%</span>`)
}

func TestMomentumSection_TimeframeDefault(t *testing.T) {
	out := MomentumSection(momentumFromJSON(t, `{"signal":"neutral","confidence":0.5}`), NewAssetRegistry())
	assert.Contains(t, out, "Short-term")
}

func TestMomentumReasoningSection(t *testing.T) {
	out := MomentumReasoningSection(momentumFromJSON(t, momentumSample))
	assert.Contains(t, out, `<ul class="reasoning-list">`)
	assert.Contains(t, out, "RSI recovering from oversold")

	assert.Contains(t, MomentumReasoningSection(nil), "No reasoning available")
	assert.Contains(t, MomentumReasoningSection(momentumFromJSON(t, `{"reasoning":[]}`)), "No reasoning available")
}
