package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/zeusops/console/internal/alerts"
	"github.com/zeusops/console/internal/db"
	"github.com/zeusops/console/internal/enhance"
	"github.com/zeusops/console/internal/hooks"
	"github.com/zeusops/console/internal/models"
)

// capture buffers a downstream response so a middleware can rewrite the body
// before anything reaches the client.
type capture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func newCapture(w http.ResponseWriter) *capture {
	return &capture{ResponseWriter: w, status: http.StatusOK}
}

func (c *capture) WriteHeader(code int) { c.status = code }

func (c *capture) Write(p []byte) (int, error) { return c.buf.Write(p) }

func (c *capture) flush() {
	c.ResponseWriter.WriteHeader(c.status)
	_, _ = c.ResponseWriter.Write(c.buf.Bytes())
}

// isPartial reports whether the request is a partial content swap.
func isPartial(r *http.Request) bool {
	return r.Header.Get("X-Partial") != ""
}

// wantsJSON mirrors the accept negotiation of the error views: the client
// accepts JSON and does not accept HTML.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") &&
		!strings.Contains(accept, "text/html")
}

// Enhance runs the page pipeline over successful HTML responses and fires
// PageReady (full loads) or ContentSwap (partials).
func Enhance(p *enhance.Pipeline, d *hooks.Dispatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newCapture(w)
			next.ServeHTTP(c, r)

			if c.status < 400 && isHTML(c) {
				partial := isPartial(r)
				var out []byte
				var err error
				if partial {
					out, err = p.Fragment(c.buf.Bytes())
				} else {
					out, err = p.Document(c.buf.Bytes())
				}
				if err == nil {
					c.buf.Reset()
					c.buf.Write(out)
					c.Header().Del("Content-Length")
					ev := hooks.PageReady
					if partial {
						ev = hooks.ContentSwap
					}
					d.Fire(ev, hooks.Context{
						Path:      r.URL.Path,
						RequestID: middleware.GetReqID(r.Context()),
						Status:    c.status,
						Partial:   partial,
					})
				}
			}
			c.flush()
		})
	}
}

func isHTML(c *capture) bool {
	ct := c.Header().Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(c.buf.Bytes())
	}
	return strings.HasPrefix(ct, "text/html")
}

// FailureAlerts turns a failed asynchronous update into a one-shot visible
// alert: partial requests get the rendered dismissible alert in place of the
// error body, JSON clients get a normalized error object. Every failure is
// recorded as an incident and fires ResponseFailure. No retries.
func FailureAlerts(t *template.Template, d *hooks.Dispatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			partial, jsonClient := isPartial(r), wantsJSON(r)
			if !partial && !jsonClient {
				next.ServeHTTP(w, r)
				return
			}

			c := newCapture(w)
			next.ServeHTTP(c, r)
			if c.status < 400 {
				c.flush()
				return
			}

			a := alerts.FromPayload(c.buf.Bytes())
			reqID := middleware.GetReqID(r.Context())
			d.Fire(hooks.ResponseFailure, hooks.Context{
				Path:      r.URL.Path,
				RequestID: reqID,
				Status:    c.status,
				Partial:   partial,
			})
			recordIncident(r, c.status, reqID, a)

			c.Header().Del("Content-Length")
			if partial {
				frag, err := alerts.Render(t, a)
				if err != nil {
					c.flush()
					return
				}
				c.Header().Set("Content-Type", "text/html; charset=utf-8")
				c.ResponseWriter.WriteHeader(c.status)
				_, _ = c.ResponseWriter.Write([]byte(frag))
				return
			}
			c.Header().Set("Content-Type", "application/json")
			c.ResponseWriter.WriteHeader(c.status)
			_ = json.NewEncoder(c.ResponseWriter).Encode(map[string]string{
				"error":      a.Message,
				"severity":   a.Severity,
				"request_id": reqID,
			})
		})
	}
}

func recordIncident(r *http.Request, status int, reqID string, a alerts.Alert) {
	if db.Conn() == nil {
		return
	}
	inc := models.Incident{
		RequestID: reqID,
		Path:      r.URL.Path,
		Status:    status,
		Severity:  a.Severity,
		Message:   a.Message,
	}
	if err := db.Conn().Create(&inc).Error; err != nil {
		log.Printf("incident record failed: %v", err)
	}
}
