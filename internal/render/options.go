package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/tickerlens/tickerlens/internal/models"
)

// noStrategyPlaceholder is rendered both when options_strategy is absent and
// when it carries the "No strategy recommended" sentinel — the two cases are
// deliberately indistinguishable in the output.
const noStrategyPlaceholder = `<p class="no-strategy">No options strategy recommended for the current market conditions</p>`

// OptionsSection renders the options strategy panel with its three-tier
// implementation breakdown. Tier values default to the literal "N/A" while
// single-value fields default to a zero dollar amount; the asymmetry is
// intentional upstream behavior, preserved as-is.
func OptionsSection(o *models.OptionsStrategy, reg *AssetRegistry) string {
	if !o.Recommended() {
		return noStrategyPlaceholder
	}

	var sb strings.Builder
	sb.WriteString(injectShared(reg))
	sb.WriteString(`<div class="panel">`)
	fmt.Fprintf(&sb, `<h3>%s</h3>`, strings.ToUpper(html.EscapeString(o.Strategy)))

	if o.Rationale != "" {
		fmt.Fprintf(&sb, `<p class="summary-text">%s</p>`, html.EscapeString(o.Rationale))
	}
	if o.RiskProfile != "" {
		fmt.Fprintf(&sb, `<p><strong>Risk Profile:</strong> %s</p>`, html.EscapeString(o.RiskProfile))
	}

	impl := o.Implementation
	if impl == nil {
		impl = &models.Implementation{}
	}

	sb.WriteString(`<h4>Implementation</h4>`)
	sb.WriteString(`<table class="metric-table"><tr><th></th><th>Conservative</th><th>Moderate</th><th>Aggressive</th></tr>`)
	fmt.Fprintf(&sb, `<tr><td>Expiration</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
		html.EscapeString(impl.Expirations.Conservative.Display()),
		html.EscapeString(impl.Expirations.Moderate.Display()),
		html.EscapeString(impl.Expirations.Aggressive.Display()))
	fmt.Fprintf(&sb, `<tr><td>Strike</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
		html.EscapeString(impl.Strikes.Conservative.Display()),
		html.EscapeString(impl.Strikes.Moderate.Display()),
		html.EscapeString(impl.Strikes.Aggressive.Display()))
	sb.WriteString(`</table>`)

	sb.WriteString(`<table class="metric-table">`)
	fmt.Fprintf(&sb, `<tr><td>Recommended Expiration</td><td>%s</td></tr>`, Money(impl.RecommendedExpiration.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Recommended Strike</td><td>%s</td></tr>`, Money(impl.RecommendedStrike.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Target Premium</td><td>%s</td></tr>`, Money(impl.Premium.TargetPremium.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Max Profit</td><td>%s</td></tr>`, Money(impl.MaxProfit.Float64()))
	fmt.Fprintf(&sb, `<tr><td>Max Loss</td><td>%s</td></tr>`, Money(impl.MaxLoss.Float64()))
	sb.WriteString(`</table>`)

	sb.WriteString(`</div>`)
	return sb.String()
}
