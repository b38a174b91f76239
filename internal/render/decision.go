package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/tickerlens/tickerlens/internal/models"
)

// decisionTooltips explains every label in the decision and price-target
// tables. The lookup is static; a label without an entry renders untipped.
var decisionTooltips = map[string]string{
	"Action":        "The recommended trading action: buy, sell, or hold.",
	"Quantity":      "The number of shares the decision applies to.",
	"Confidence":    "How confident the agents are in this decision, as a percentage.",
	"Current Price": "The latest market price for the ticker.",
	"Fair Value":    "The price the valuation agents consider justified by fundamentals.",
	"Buy Target":    "Price at or below which accumulating is considered attractive.",
	"Sell Target":   "Price at or above which reducing the position is considered attractive.",
}

// DecisionSection renders the trading decision and price-target panels side by
// side. Confidence is stored upstream as a 0-1 fraction and converted to a
// percentage here only.
func DecisionSection(a *models.Analysis, reg *AssetRegistry) string {
	var sb strings.Builder
	sb.WriteString(injectShared(reg))

	sb.WriteString(`<div class="panel-row">`)

	sb.WriteString(`<div class="panel"><h3>Trading Decision</h3><table class="metric-table">`)
	writeMetricRow(&sb, "Action", strings.ToUpper(html.EscapeString(a.Action)))
	writeMetricRow(&sb, "Quantity", fmt.Sprintf("%.0f", a.Quantity.Float64()))
	writeMetricRow(&sb, "Confidence", Percent(a.Confidence.Float64()))
	sb.WriteString(`</table></div>`)

	sb.WriteString(`<div class="panel"><h3>Price Targets</h3><table class="metric-table">`)
	writeMetricRow(&sb, "Current Price", Money(a.PriceTargets.CurrentPrice.Float64()))
	writeMetricRow(&sb, "Fair Value", Money(a.PriceTargets.FairValue.Float64()))
	writeMetricRow(&sb, "Buy Target", Money(a.PriceTargets.BuyTarget.Float64()))
	writeMetricRow(&sb, "Sell Target", Money(a.PriceTargets.SellTarget.Float64()))
	sb.WriteString(`</table>`)
	if png, err := RenderTargetChart(a.PriceTargets); err == nil {
		sb.WriteString(fmt.Sprintf(`<img class="target-chart" alt="Price targets chart" src="data:image/png;base64,%s">`,
			base64.StdEncoding.EncodeToString(png)))
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	return sb.String()
}

func writeMetricRow(sb *strings.Builder, label, value string) {
	tip, ok := decisionTooltips[label]
	labelMarkup := html.EscapeString(label)
	if ok {
		labelMarkup = Tooltip(label, tip)
	}
	fmt.Fprintf(sb, `<tr><td>%s</td><td>%s</td></tr>`, labelMarkup, value)
}
