package enhance

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SelectEnhancer stamps the configuration the client-side multi-select widget
// reads onto matching <select> elements: no duplicate entries, search by
// option label, dropdown anchored below the control.
//
// A select matches when it allows multiple values or opts in explicitly with
// data-enhance="select".
type SelectEnhancer struct{}

func (SelectEnhancer) Rewrite(n *html.Node) {
	if n.DataAtom != atom.Select {
		return
	}
	_, multiple := attr(n, "multiple")
	if !multiple {
		if v, ok := attr(n, "data-enhance"); !ok || v != "select" {
			return
		}
	}
	setAttr(n, "data-enhanced", "true")
	setAttr(n, "data-no-duplicates", "true")
	setAttr(n, "data-search-by-label", "true")
	setAttr(n, "data-dropdown-position", "bottom")
}
