// Package alerts builds the dismissible alert shown when an asynchronous
// page update fails.
package alerts

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strings"
)

// Defaults used when a failed response carries no structured alert payload.
const (
	DefaultMessage  = "Oof. Unknown Error Occurred."
	DefaultSeverity = "danger"
)

type Alert struct {
	Severity string // "danger", "warning", "info", "success"
	Message  string
}

func Default() Alert {
	return Alert{Severity: DefaultSeverity, Message: DefaultMessage}
}

// FromPayload builds an Alert from a failed response body. Error responses
// carry {"error": "..."}; richer payloads may set message/severity directly.
// Missing or undecodable fields fall back to the defaults field by field.
func FromPayload(body []byte) Alert {
	a := Default()

	var p struct {
		Error    string `json:"error"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return a
	}
	switch {
	case strings.TrimSpace(p.Message) != "":
		a.Message = strings.TrimSpace(p.Message)
	case strings.TrimSpace(p.Error) != "":
		a.Message = strings.TrimSpace(p.Error)
	}
	if s := strings.TrimSpace(p.Severity); s != "" {
		a.Severity = strings.ToLower(s)
	}
	return a
}

// Render executes the alert partial ("alert.tmpl") for a.
func Render(t *template.Template, a Alert) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "alert.tmpl", a); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
