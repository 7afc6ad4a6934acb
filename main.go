package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"survey-translation-service/config"
	"survey-translation-service/database"
	"survey-translation-service/handlers"
	"survey-translation-service/llm"
	"survey-translation-service/metrics"
	"survey-translation-service/openai"
	"survey-translation-service/service"
	"survey-translation-service/stubllm"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	log.SetLevelFromString(cfg.LogLevel)

	// Provider selection happens here, once: the service itself never
	// inspects credentials.
	var client llm.Client
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, using the offline stub provider")
		client = stubllm.NewClient()
	} else {
		client = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout, cfg.OpenAIMaxTokens, cfg.OpenAITemperature)
	}
	log.WithField("model", client.ModelName()).Info("translation provider initialized")

	var db *database.Database
	if cfg.StoreEnabled() {
		var err error
		db, err = database.NewDatabase(cfg)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize database")
		}
		defer db.Close()
	} else {
		log.Warn("DB_HOST is not set, survey store endpoints disabled")
	}

	metrics.Register()

	translationService := service.NewService(client)
	h := handlers.NewHandlers(translationService, db)

	router := gin.Default()
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1/surveys")
	{
		api.POST("/translate", h.TranslateSurvey)
		api.POST("/translate/async", h.TranslateSurveyAsync)
		api.GET("/translate/languages", h.GetSupportedLanguages)

		if db != nil {
			api.POST("", h.SaveSurvey)
			api.GET("", h.ListSurveys)
			api.GET("/:id", h.GetSurvey)
			api.DELETE("/:id", h.DeleteSurvey)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
