package enhance

import (
	"golang.org/x/net/html"

	"github.com/zeusops/console/internal/timefmt"
)

// TimestampUpdater replaces the text of elements carrying a data-timestamp
// attribute with the formatted value. Elements whose value does not format
// keep their existing text, usually a placeholder.
type TimestampUpdater struct {
	F *timefmt.Formatter
}

func (u *TimestampUpdater) Rewrite(n *html.Node) {
	raw, ok := attr(n, "data-timestamp")
	if !ok {
		return
	}
	pattern, _ := attr(n, "data-time-format")

	var out string
	if u.F != nil {
		out = u.F.FormatValue(raw, pattern)
	} else {
		out = timefmt.FormatTimestampValue(raw, pattern)
	}
	if out == "" {
		return
	}
	setText(n, out)
}
