package enhance

import (
	"strings"
	"testing"
	"time"

	"github.com/zeusops/console/internal/timefmt"
)

func utcPipeline() *Pipeline {
	return NewPipeline(
		&TimestampUpdater{F: timefmt.New(time.UTC)},
		SelectEnhancer{},
	)
}

func TestDocumentFormatsTimestampSpans(t *testing.T) {
	page := []byte(`<!DOCTYPE html><html><body>` +
		`<span data-timestamp="1700000000">—</span>` +
		`<span data-timestamp="1700000000" data-time-format="YYYY-MM-DD">—</span>` +
		`</body></html>`)

	out, err := utcPipeline().Document(page)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, ">11/14/23 10:13:20 pm<") {
		t.Errorf("default-pattern span not formatted:\n%s", got)
	}
	if !strings.Contains(got, ">2023-11-14<") {
		t.Errorf("custom-pattern span not formatted:\n%s", got)
	}
}

func TestDocumentPreservesPlaceholderOnInvalidInput(t *testing.T) {
	page := []byte(`<!DOCTYPE html><html><body>` +
		`<span data-timestamp="not-a-number">pending</span>` +
		`<span data-timestamp="">pending</span>` +
		`</body></html>`)

	out, err := utcPipeline().Document(page)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if strings.Count(string(out), ">pending<") != 2 {
		t.Errorf("placeholder text was clobbered:\n%s", out)
	}
}

func TestFragmentFormatsWithoutDocumentWrapper(t *testing.T) {
	frag := []byte(`<div class="card"><span data-timestamp="1700000000" data-time-format="YYYY">x</span></div>`)

	out, err := utcPipeline().Fragment(frag)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, ">2023<") {
		t.Errorf("fragment span not formatted: %s", got)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("fragment gained document wrappers: %s", got)
	}
}

func TestSelectEnhancerMarksMultiSelects(t *testing.T) {
	page := []byte(`<!DOCTYPE html><html><body>` +
		`<select id="a" multiple><option>x</option></select>` +
		`<select id="b"><option>y</option></select>` +
		`<select id="c" data-enhance="select"><option>z</option></select>` +
		`</body></html>`)

	out, err := utcPipeline().Document(page)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	got := string(out)
	if strings.Count(got, `data-no-duplicates="true"`) != 2 {
		t.Errorf("expected exactly the multiple and opted-in selects enhanced:\n%s", got)
	}
	if strings.Count(got, `data-search-by-label="true"`) != 2 ||
		strings.Count(got, `data-dropdown-position="bottom"`) != 2 {
		t.Errorf("widget config attributes incomplete:\n%s", got)
	}
}
