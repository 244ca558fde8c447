// cmd/web/main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/api/handlers"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/config"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/feed"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/render"
	"github.com/artesfox/santo-grial-inmobiliaria-free/internal/services"
	"github.com/artesfox/santo-grial-inmobiliaria-free/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("sem .env, usando variáveis do ambiente")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("configuração:", err)
	}

	appLog := logger.New(cfg.App.Name + " ")

	// Setup dependencies
	feedClient := feed.NewClient(cfg.Feed.URL, appLog)
	renderer, err := render.New()
	if err != nil {
		log.Fatal("templates:", err)
	}

	catalogSvc := services.NewCatalogService(feedClient, cfg.Site)
	detailSvc := services.NewDetailService(feedClient)

	catalogHandler := handlers.NewCatalogHandler(catalogSvc, renderer, appLog)
	detailHandler := handlers.NewDetailHandler(detailSvc, renderer, appLog)

	r := mux.NewRouter()
	r.HandleFunc("/", catalogHandler.HandleCatalog).Methods("GET")
	r.HandleFunc("/index", catalogHandler.HandleCatalog).Methods("GET")
	r.HandleFunc("/propiedad", detailHandler.HandleDetail).Methods("GET")

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server running on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
