package render

import (
	"fmt"
	"html"
)

// Tooltip pairs a label with a hoverable info indicator that reveals the
// explanation text. Pure function, no side effects.
func Tooltip(label, text string) string {
	return fmt.Sprintf(
		`<span class="tooltip-label">%s<i class="fas fa-info-circle tooltip-icon"></i><span class="tooltip-text">%s</span></span>`,
		html.EscapeString(label), html.EscapeString(text))
}
