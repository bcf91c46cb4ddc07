package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/zeusops/console/internal/db"
	"github.com/zeusops/console/internal/models"
)

// IncidentQR serves a QR of the incident permalink so the reference a user
// reports to support can be pulled up from a phone.
func IncidentQR(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}
	var inc models.Incident
	if err := db.Conn().First(&inc, id).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	url := "http://" + r.Host + "/admin/incidents?focus=" + strconv.Itoa(id)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
