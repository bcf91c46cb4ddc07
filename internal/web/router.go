package web

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zeusops/console/internal/enhance"
	"github.com/zeusops/console/internal/handlers"
	"github.com/zeusops/console/internal/hooks"
	"github.com/zeusops/console/internal/timefmt"
)

// Router builds the production handler with templates under ./templates.
func Router() http.Handler {
	return NewRouter("templates")
}

func NewRouter(templatesDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates(templatesDir)

	// Runs over every rendered page and content swap.
	pipeline := enhance.NewPipeline(
		&enhance.TimestampUpdater{F: timefmt.New(time.Local)},
		enhance.SelectEnhancer{},
	)

	d := hooks.NewDispatcher()
	d.Register(hooks.ResponseFailure, func(c hooks.Context) {
		log.Printf("async update failed: path=%s status=%d request_id=%s", c.Path, c.Status, c.RequestID)
	})

	r.Use(FailureAlerts(tmpl, d))
	r.Use(Enhance(pipeline, d))

	// Public pages
	r.Get("/", handlers.Home(tmpl))
	r.Get("/healthz", handlers.Health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// --- Admin routes ---
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/incidents", handlers.AdminIncidents(tmpl))
		ar.Get("/incidents/{id}/qr.png", handlers.IncidentQR)
	})

	return r
}

// Templates parses the layout, partial, and page templates under baseDir.
func Templates(baseDir string) (*template.Template, error) {
	funcs := template.FuncMap{
		"year":   func() string { return time.Now().Format("2006") },
		"unixts": func(t time.Time) int64 { return t.Unix() },
	}

	p := template.New("").Funcs(funcs)
	for _, glob := range []string{
		filepath.Join(baseDir, "layouts", "*.tmpl"),
		filepath.Join(baseDir, "partials", "*.tmpl"),
		filepath.Join(baseDir, "pages", "*.tmpl"),
		filepath.Join(baseDir, "pages", "admin", "*.tmpl"),
	} {
		var err error
		if p, err = p.ParseGlob(glob); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func mustParseTemplates(baseDir string) *template.Template {
	t, err := Templates(baseDir)
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	return t
}
