// README: Entry point; loads config, wires provider clients and the
// planning pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"yatra/internal/ai"
	"yatra/internal/config"
	"yatra/internal/history"
	httptransport "yatra/internal/http"
	"yatra/internal/http/handlers"
	"yatra/internal/images"
	"yatra/internal/infra"
	"yatra/internal/maps"
	"yatra/internal/planner"
	"yatra/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var llm ai.TextGenerator
	switch cfg.AI.Provider {
	case "openai":
		llm = ai.NewOpenAIClient(cfg.AI.OpenAIKey)
	default:
		gemini, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		llm = gemini
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	weatherClient := weather.NewClient(cfg.Weather.APIKey, redisClient)
	imageClient := images.NewClient(cfg.Images.AccessKey)

	var routes planner.RouteProvider
	if cfg.Maps.APIKey != "" {
		routeService, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		routes = routeService
	}

	pipeline := planner.New(llm, weatherClient, imageClient, routes)

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()
	historySvc := history.NewService(history.NewStore(dbPool))

	planHandler := handlers.NewPlanHandler(pipeline, historySvc, cfg.ProviderTimeout)
	historyHandler := handlers.NewHistoryHandler(historySvc)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(planHandler, historyHandler),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
