package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/tickerlens/tickerlens/internal/models"
)

// The three momentum payload states each get a distinct rendered outcome.
const (
	momentumAbsentNotice = `<div class="notice notice-warning">No momentum analysis available</div>`
	momentumEmptyNotice  = `<div class="notice notice-warning">Momentum analysis is present but contains no data</div>`
)

// defaultTimeframe is used when the momentum block omits its timeframe.
const defaultTimeframe = "Short-term"

// MomentumSection renders the short-term momentum panel: indicators, price
// levels, and the trading signal. Individual numeric fields are not guarded
// once the object is non-empty; that mirrors the upstream contract.
func MomentumSection(m *models.Momentum, reg *AssetRegistry) string {
	if m == nil {
		return momentumAbsentNotice
	}
	if m.Empty() {
		return momentumEmptyNotice
	}

	var sb strings.Builder
	sb.WriteString(injectShared(reg))
	sb.WriteString(`<div class="panel-row">`)

	sb.WriteString(`<div class="panel"><h3>Momentum Indicators</h3><table class="metric-table">`)
	fmt.Fprintf(&sb, `<tr><td>Price Momentum</td><td><span class="badge %s">%s</span></td></tr>`,
		indicatorBadge(m.PriceMomentum), PercentValue(m.PriceMomentum.Value))
	fmt.Fprintf(&sb, `<tr><td>Volume Momentum</td><td><span class="badge %s">%s</span></td></tr>`,
		indicatorBadge(m.VolumeMomentum), PercentValue(m.VolumeMomentum.Value))
	fmt.Fprintf(&sb, `<tr><td>RSI</td><td>%s</td></tr>`, Num2(m.RSI.Float64()))
	sb.WriteString(`</table></div>`)

	sb.WriteString(`<div class="panel"><h3>Price Levels</h3><table class="metric-table">`)
	fmt.Fprintf(&sb, `<tr><td>Current Price</td><td>%s</td></tr>`, Money(m.CurrentPrice.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Target Price</td><td>%s</td></tr>`, Money(m.TargetPrice.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Support</td><td>%s</td></tr>`, Money(m.SupportLevel.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Resistance</td><td>%s</td></tr>`, Money(m.ResistanceLevel.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Stop Loss</td><td>%s</td></tr>`, Money(m.StopLoss.Float64()))
	sb.WriteString(`</table></div>`)

	timeframe := m.Timeframe
	if timeframe == "" {
		timeframe = defaultTimeframe
	}
	sb.WriteString(`<div class="panel"><h3>Trading Signal</h3><table class="metric-table">`)
	fmt.Fprintf(&sb, `<tr><td>Action</td><td><span class="%s">%s</span></td></tr>`,
		SignalClass(m.Signal), strings.ToUpper(string(m.Signal)))
	fmt.Fprintf(&sb, `<tr><td>Timeframe</td><td>%s</td></tr>`, html.EscapeString(timeframe))
	fmt.Fprintf(&sb, `<tr><td>Confidence</td><td>%s</td></tr>`, Percent(m.Confidence.Float64()))
	sb.WriteString(`</table></div>`)

	sb.WriteString(`</div>`)
	return sb.String()
}

// indicatorBadge picks the badge polarity from the indicator's own signal,
// falling back to the value's sign when the payload carried no signal.
func indicatorBadge(mi models.MomentumIndicator) string {
	switch mi.Signal {
	case models.SignalBullish:
		return "badge-positive"
	case models.SignalBearish:
		return "badge-negative"
	case models.SignalNeutral:
		return "badge-neutral"
	}
	return BadgeClass(mi.Value)
}

// MomentumReasoningSection renders the momentum reasoning strings as a list,
// or a placeholder when the list is absent or empty.
func MomentumReasoningSection(m *models.Momentum) string {
	if m == nil || len(m.Reasoning) == 0 {
		return `<p class="no-reasoning">No reasoning available</p>`
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="reasoning-list">`)
	for _, line := range m.Reasoning {
		fmt.Fprintf(&sb, `<li>%s</li>`, html.EscapeString(line))
	}
	sb.WriteString(`</ul>`)
	return sb.String()
}
