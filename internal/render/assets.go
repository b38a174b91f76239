package render

import "sync"

// Names of the shared presentation assets.
const (
	AssetDashboardStyle = "dashboard-style"
	AssetIconFont       = "icon-font"
)

// iconFontLink pulls in the icon font used by the tooltip indicators.
const iconFontLink = `<link id="icon-font" rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">` + "\n"

// dashboardStyle is the shared style block for every rendered section.
const dashboardStyle = `<style id="dashboard-style">
.panel-row{display:flex;gap:1.5rem;flex-wrap:wrap}
.panel{flex:1;min-width:280px;background:#fff;border:1px solid #e2e8f0;border-radius:8px;padding:1rem}
.panel h3,.panel h4{margin:0 0 .75rem;color:#1a202c}
.metric-table{width:100%;border-collapse:collapse}
.metric-table td{padding:.4rem .6rem;border-bottom:1px solid #edf2f7}
.metric-table td:last-child{text-align:right;font-weight:600}
.signal-bullish{color:#15803d;font-weight:bold}
.signal-bearish{color:#b91c1c;font-weight:bold}
.signal-neutral{color:#6b7280;font-weight:bold}
.badge{display:inline-block;padding:.15rem .5rem;border-radius:9999px;font-size:.85em;font-weight:600}
.badge-positive{background:#dcfce7;color:#15803d}
.badge-negative{background:#fee2e2;color:#b91c1c}
.badge-neutral{background:#f3f4f6;color:#6b7280}
.notice{padding:.75rem 1rem;border-radius:6px;margin:.5rem 0}
.notice-warning{background:#fef9c3;color:#854d0e}
.reasoning-list{margin:.5rem 0;padding-left:1.25rem}
.reasoning-list li{margin:.3rem 0}
.summary-text{font-style:italic;color:#374151}
.tooltip-label{position:relative;cursor:help}
.tooltip-icon{margin-left:.3rem;color:#94a3b8;font-size:.8em}
.tooltip-text{visibility:hidden;position:absolute;bottom:125%;left:0;z-index:10;width:220px;background:#1f2937;color:#f9fafb;font-size:.8em;font-weight:400;padding:.5rem;border-radius:4px}
.tooltip-label:hover .tooltip-text{visibility:visible}
.target-chart{max-width:100%;margin-top:.75rem}
</style>` + "\n"

// AssetRegistry tracks which shared assets have already been attached to the
// document being rendered. The invariant is per document, so every render of
// a document gets a fresh registry; it is the only mutable state in this
// package. First claim wins, assets are never torn down within a render.
type AssetRegistry struct {
	mu       sync.Mutex
	injected map[string]bool
}

// NewAssetRegistry creates an empty registry.
func NewAssetRegistry() *AssetRegistry {
	return &AssetRegistry{injected: make(map[string]bool)}
}

// Inject returns markup the first time name is requested and "" on every
// subsequent request, guaranteeing at most one copy of each asset regardless
// of how many times rendering occurs.
func (r *AssetRegistry) Inject(name, markup string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.injected[name] {
		return ""
	}
	r.injected[name] = true
	return markup
}

// Injected reports whether the named asset has been emitted.
func (r *AssetRegistry) Injected(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.injected[name]
}

// injectShared emits the icon font and shared style block on first use.
func injectShared(reg *AssetRegistry) string {
	return reg.Inject(AssetIconFont, iconFontLink) + reg.Inject(AssetDashboardStyle, dashboardStyle)
}
