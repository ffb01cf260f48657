package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/spinelhq/spinel/core"
	"github.com/spinelhq/spinel/modules/domains"
	"github.com/spinelhq/spinel/modules/logos"
	"github.com/spinelhq/spinel/modules/names"
	"github.com/spinelhq/spinel/modules/saved"
	"github.com/spinelhq/spinel/pkg/config"
	"github.com/spinelhq/spinel/pkg/httpserver"
	"github.com/spinelhq/spinel/pkg/llm"
	"github.com/spinelhq/spinel/pkg/logger"
	"github.com/spinelhq/spinel/pkg/mongo"
)

type appConfig struct {
	HTTP  httpserver.Config
	Mongo mongo.Config
	LLM   llm.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithService("spinel"),
	)

	ctx := context.Background()

	mongoClient, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		log.ErrorContext(ctx, "mongodb connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect failed", logger.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)

	completer := llm.NewClient(cfg.LLM)

	generator := names.NewGenerator(completer, names.WithLogger(log))
	checker := domains.NewChecker(domains.WithLogger(log))
	logoService := logos.NewService(completer, logos.WithLogger(log))
	savedRepo := saved.NewMongoRepository(db)

	r := chi.NewRouter()
	r.Use(core.RequestLogger(log))
	r.Use(core.Recoverer(log))
	r.Use(core.CORS)

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, mongo.Healthcheck(mongoClient)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			core.RespondJSON(w, http.StatusOK, map[string]string{
				"message": "Spinel Name Generator API",
			})
		})
		names.Register(r, generator)
		domains.Register(r, checker)
		logos.Register(r, logoService)
		saved.Register(r, savedRepo)
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.ErrorContext(ctx, "server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
