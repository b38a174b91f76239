package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/tickerlens/tickerlens/internal/models"
)

// optionsAdvisorMarker identifies the options advisor agent's rows, which are
// rendered exclusively by the options-strategy section to avoid duplication.
const optionsAdvisorMarker = "options_advisor"

// SignalsSection renders the reasoning summary and the per-agent signal table.
// An empty signal list renders a neutral placeholder, never an empty table.
func SignalsSection(a *models.Analysis, reg *AssetRegistry) string {
	signals := make([]models.AgentSignal, 0, len(a.Signals()))
	for _, s := range a.Signals() {
		if strings.Contains(s.Agent, optionsAdvisorMarker) {
			continue
		}
		signals = append(signals, s)
	}

	if len(signals) == 0 {
		return `<p class="no-signals">No agent signals available</p>`
	}

	var sb strings.Builder
	sb.WriteString(injectShared(reg))
	sb.WriteString(`<div class="panel"><h3>Agent Analysis</h3>`)

	if a.Reasoning != nil && a.Reasoning.Summary != "" {
		fmt.Fprintf(&sb, `<p class="summary-text">%s</p>`, html.EscapeString(a.Reasoning.Summary))
	}

	sb.WriteString(`<table class="metric-table"><tr><th>Agent</th><th>Signal</th><th>Confidence</th></tr>`)
	for _, s := range signals {
		fmt.Fprintf(&sb, `<tr><td>%s</td><td><span class="%s">%s</span></td><td>%s</td></tr>`,
			html.EscapeString(HumanizeAgent(s.Agent)),
			SignalClass(s.Signal),
			strings.ToUpper(string(s.Signal)),
			Percent(s.Confidence.Float64()))
	}
	sb.WriteString(`</table></div>`)

	return sb.String()
}
