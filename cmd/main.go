package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Vovarama1992/fairfare-ai-bridge/internal/ai"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/chat"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/config"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/metrics"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/negotiation"
	"github.com/Vovarama1992/fairfare-ai-bridge/internal/sellervibe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	// --- DB (история) ---
	var repo negotiation.Repo
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL is not set, plan history disabled")
		repo = negotiation.NewNoopRepo()
	} else {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}
		if err := negotiation.Migrate(ctx, db); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
		repo = negotiation.NewRepo(db)
	}

	// --- AI ---
	clients := map[string]ai.AI{}
	if cfg.Uses(config.ProviderOpenAI) {
		clients[config.ProviderOpenAI] = ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
	if cfg.Uses(config.ProviderGemini) {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init error: %v", err)
		}
		clients[config.ProviderGemini] = gemini
	}

	planAI := ai.Instrument(clients[cfg.PlanProvider], cfg.PlanProvider, recorder)
	assistantAI := ai.Instrument(clients[cfg.AssistantProvider], cfg.AssistantProvider, recorder)

	planMode := ai.ModeFreeText
	if cfg.PlanJSONMode {
		planMode = ai.ModeStructured
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", negotiation.UserIDHeader},
	}))

	// --- Negotiation module wiring ---
	negotiationService := negotiation.NewService(repo, planAI, assistantAI, planMode, recorder)
	negotiation.RegisterRoutes(r, negotiation.NewHandler(negotiationService))

	// --- Seller vibe ---
	vibeService := sellervibe.NewService(assistantAI, cfg.VibeMinChars)
	sellervibe.RegisterRoutes(r, sellervibe.NewHandler(vibeService))

	// --- Co-pilot chat ---
	chat.RegisterRoutes(r, chat.NewHandler(chat.NewService(assistantAI)))

	// --- health / metrics ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	log.Printf("listening on :%s plan=%s(%s) assistant=%s", cfg.Port, cfg.PlanProvider, planMode, cfg.AssistantProvider)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
