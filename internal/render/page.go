package render

import (
	"fmt"
	"strings"
)

// Page renders the dashboard shell: input form, the three mutually exclusive
// state containers (loading / results / error), and the five section mount
// points. The shell carries only its own style; the shared dashboard assets
// travel with the section fragments, which claim them from the per-render
// registry so each document holds at most one copy.
func Page(errorDisplayMS int) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	sb.WriteString(`<title>TickerLens</title>` + "\n")
	sb.WriteString(pageStyle)
	sb.WriteString("</head>\n<body>\n")

	sb.WriteString(`<h1>TickerLens</h1>`)
	sb.WriteString(`<form id="analyze-form">`)
	sb.WriteString(`<input id="ticker" name="ticker" placeholder="Ticker (e.g. AAPL)" required>`)
	sb.WriteString(`<input id="end-date" name="end_date" type="date">`)
	sb.WriteString(`<input id="num-news" name="num_of_news" type="number" min="1" max="100" value="5">`)
	sb.WriteString(`<button type="submit">Analyze</button>`)
	sb.WriteString(`</form>`)

	sb.WriteString(`<div id="loading" class="hidden">Analyzing… this can take a minute.</div>`)
	sb.WriteString(`<div id="error" class="hidden"></div>`)

	sb.WriteString(`<div id="results" class="hidden">`)
	for _, c := range []struct{ id, title string }{
		{ContainerDecision, "Decision &amp; Price Targets"},
		{ContainerOptionsStrategy, "Options Strategy"},
		{ContainerAgentReasoning, "Agent Reasoning"},
		{ContainerMomentum, "Momentum"},
		{ContainerShortTermReasoning, "Short-Term Reasoning"},
	} {
		fmt.Fprintf(&sb, `<section><h2>%s</h2><div id="%s"></div></section>`, c.title, c.id)
	}
	sb.WriteString(`</div>`)

	fmt.Fprintf(&sb, pageScript, errorDisplayMS)
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

const pageStyle = `<style>
body{font-family:system-ui,sans-serif;max-width:1100px;margin:0 auto;padding:1rem;background:#f8fafc}
#analyze-form{display:flex;gap:.5rem;margin-bottom:1rem}
#loading{padding:1rem;color:#1d4ed8}
#error{padding:1rem;background:#fee2e2;color:#b91c1c;border-radius:6px}
.hidden{display:none}
section{margin-bottom:1.5rem}
</style>` + "\n"

// pageScript drives the loading/results/error state machine. Errors are
// transient: they auto-dismiss after the configured duration (%d ms).
const pageScript = `<script>
const form = document.getElementById('analyze-form');
const loading = document.getElementById('loading');
const results = document.getElementById('results');
const errorBox = document.getElementById('error');
const ERROR_DISPLAY_MS = %d;

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  loading.classList.remove('hidden');
  errorBox.classList.add('hidden');
  try {
    const resp = await fetch('/api/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({
        ticker: document.getElementById('ticker').value,
        end_date: document.getElementById('end-date').value,
        num_of_news: parseInt(document.getElementById('num-news').value, 10) || 0
      })
    });
    const data = await resp.json();
    if (!data.success) {
      showError(data.error || 'Analysis failed', data.display_ms);
      return;
    }
    for (const [id, markup] of Object.entries(data.sections)) {
      const el = document.getElementById(id);
      if (el) el.innerHTML = markup;
    }
    results.classList.remove('hidden');
  } catch (err) {
    showError('Failed to fetch analysis results. Please try again.');
  } finally {
    loading.classList.add('hidden');
  }
});

function showError(message, displayMS) {
  errorBox.textContent = message;
  errorBox.classList.remove('hidden');
  setTimeout(() => errorBox.classList.add('hidden'), displayMS || ERROR_DISPLAY_MS);
}
</script>` + "\n"
