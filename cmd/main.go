package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"llm_advisor/internal/adapters"
	"llm_advisor/internal/bootstrap"
	llmDelivery "llm_advisor/internal/delivery/llm"
	ownMiddleware "llm_advisor/internal/middleware"
	"llm_advisor/internal/repository"
	gameuc "llm_advisor/internal/usecase/game"
)

type mainDeliveryHandler struct {
	llm *llmDelivery.LlmHandler
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handlers := initializeDeliveryHandlers(cfg, logger)

	r := chi.NewRouter()
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go handleShutdown(ctx, cancel, server, logger)

	logger.Infof("Server is running on port %s, deployment %s", cfg.ServerPort, cfg.LlmDeployment)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.llm.HandleHealth)
	r.Post("/llmMove", h.llm.HandleSuggestMove)
}

func initializeDeliveryHandlers(cfg *bootstrap.Config, log *zap.SugaredLogger) *mainDeliveryHandler {
	llmAdapter := adapters.NewLlmAdapter(cfg)
	llmRepo := repository.NewLlmRepository(llmAdapter, log)
	gameUC := gameuc.NewGameUseCase(llmRepo, log)

	return &mainDeliveryHandler{
		llm: llmDelivery.NewLlmHandler(log, gameUC),
	}
}

func handleShutdown(ctx context.Context, cancelFunc context.CancelFunc, server *http.Server, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("Received shutdown signal")
	case <-ctx.Done():
	}
	cancelFunc()

	// дать время завершить запросы к модели
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shutdown server", zap.Error(err))
	}
}
