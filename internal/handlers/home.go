package handlers

import (
	"html/template"
	"net/http"
	"time"
)

func Home(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"Title": "Zeus Console",
			"Now":   time.Now().Unix(),
		}
		if err := t.ExecuteTemplate(w, "home.tmpl", data); err != nil {
			http.Error(w, err.Error(), 500)
		}
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
