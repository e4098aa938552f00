package render

import theme "github.com/goliatone/go-theme"

// Options describe per-request data renderers can use without mutating the
// form snapshot they receive.
type Options struct {
	// Values pre-populates rendered controls keyed by item id, e.g. when the
	// preview re-renders mid-session.
	Values map[string]any
	// Errors surfaces validation feedback keyed by item id so controls can
	// show inline messages.
	Errors map[string][]string
	// Theme carries resolved go-theme tokens the HTML renderer maps onto CSS
	// custom properties. Nil renders with the default chrome.
	Theme *theme.RendererConfig
}
