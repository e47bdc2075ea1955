package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"sms_dispatch/config"
	"sms_dispatch/logging"
	"sms_dispatch/sms"
)

func newRouter(cfg *config.AppConfig, dispatcher *sms.Dispatcher, logger *zap.Logger) http.Handler {
	rl := NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.BurstLimit, logger)

	protect := func(h http.HandlerFunc) http.Handler {
		return rl.LimitMiddleware(requireAPIKey(cfg.APIKey, h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "pong")
	})
	mux.Handle("/send-sms", protect(func(w http.ResponseWriter, r *http.Request) {
		sms.HandleSendSMS(w, r, dispatcher)
	}))
	mux.Handle("/validate-phone", protect(sms.HandleValidatePhone))

	return requestLogger(logger, mux)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.APIKey == "" {
		logger.Warn("API_KEY is not set, API routes are unauthenticated")
	}

	twilioCfg, err := config.LoadTwilio()
	if err != nil {
		logger.Fatal("Failed to load Twilio configuration", zap.Error(err))
	}
	if !twilioCfg.HasCredentials() {
		logger.Warn("Twilio credentials are not set, every send will fail")
	}

	dispatcher := sms.NewDispatcher(twilioCfg, sms.NewTwilioSender(twilioCfg), logger)

	logger.Info("Server is listening", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, newRouter(cfg, dispatcher, logger)); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
