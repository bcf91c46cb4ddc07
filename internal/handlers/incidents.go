package handlers

import (
	"html/template"
	"net/http"

	"github.com/zeusops/console/internal/db"
	"github.com/zeusops/console/internal/models"
)

// AdminIncidents lists recorded failures, newest first. Timestamps render as
// data-timestamp spans so the enhancement pass formats them like every other
// page.
func AdminIncidents(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var incidents []models.Incident
		if err := db.Conn().Order("created_at desc").Limit(200).Find(&incidents).Error; err != nil {
			http.Error(w, "db error", 500)
			return
		}
		data := map[string]any{"Title": "Admin • Incidents", "Incidents": incidents}
		if err := t.ExecuteTemplate(w, "incidents.tmpl", data); err != nil {
			http.Error(w, err.Error(), 500)
		}
	}
}
