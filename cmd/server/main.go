package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teyorkk/portfolio-assistant/config"
	"github.com/teyorkk/portfolio-assistant/internal/chat"
	"github.com/teyorkk/portfolio-assistant/internal/github"
	"github.com/teyorkk/portfolio-assistant/internal/llm"
	"github.com/teyorkk/portfolio-assistant/internal/portfolio"
	"github.com/teyorkk/portfolio-assistant/internal/search"
	"github.com/teyorkk/portfolio-assistant/internal/server"
	"github.com/teyorkk/portfolio-assistant/internal/tools"
)

func main() {
	cfg := config.Load()

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider:  cfg.LLMProvider,
		GeminiKey: cfg.GeminiKey,
		OpenAIKey: cfg.OpenAIKey,
		Model:     cfg.LLMModel,
		BaseURL:   cfg.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}
	if name := cfg.MissingCredential(); name != "" {
		log.Printf("warning: %s is not set; chat requests will fail until it is configured", name)
	}

	repos := github.NewClient(cfg.GitHubToken)
	store := portfolio.NewStore(cfg.DataDir, repos)
	dispatcher := tools.NewDispatcher(store, repos, search.NewClient())
	orch := chat.New(client, dispatcher)
	handler := server.New(orch, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("shutting down.")
}
