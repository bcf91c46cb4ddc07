package main

import (
	"log"
	"net/http"
	"os"

	"github.com/zeusops/console/internal/db"
	"github.com/zeusops/console/internal/web"
)

func main() {
	// Init DB (creates console.db in working dir)
	if err := db.Init(); err != nil {
		log.Fatalf("db init: %v", err)
	}

	r := web.Router()

	addr := getEnv("ADDR", ":8080")
	log.Printf("Zeus console listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
