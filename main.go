package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Millcalc/internal/auth"
	"Millcalc/internal/calc/charge"
	"Millcalc/internal/calc/economics"
	"Millcalc/internal/calc/mill"
	"Millcalc/internal/calc/premium/autodesign"
	"Millcalc/internal/calc/premium/batch"
	"Millcalc/internal/calc/premium/importer"
	"Millcalc/internal/calc/premium/recommend"
	"Millcalc/internal/calc/report"
	"Millcalc/internal/catalog/distribution"
	"Millcalc/internal/catalog/material"
	"Millcalc/internal/config"
	"Millcalc/internal/repo"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg *config.Config, users repo.Repository) {
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: users, InsecureCookie: !cfg.TLS()}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	materialH := &material.Handler{}
	distributionH := &distribution.Handler{}
	api.HandleFunc("/materials", materialH.List).Methods("GET")
	api.HandleFunc("/materials/categories", materialH.Categories).Methods("GET")
	api.HandleFunc("/materials/{key}", materialH.Get).Methods("GET")
	api.HandleFunc("/distributions", distributionH.List).Methods("GET")
	api.HandleFunc("/distributions/{key}", distributionH.Get).Methods("GET")

	millH := &mill.Handler{}
	chargeH := &charge.Handler{}
	economicsH := &economics.Handler{Assumptions: cfg.Economics}
	api.HandleFunc("/tools/mill/calc", millH.Calc).Methods("POST")
	api.HandleFunc("/tools/mill/charge", chargeH.Calc).Methods("POST")
	api.HandleFunc("/tools/mill/economics", economicsH.Calc).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	designH := &autodesign.Handler{Runner: autodesign.NewRunner(cfg.PhaseInterval, cfg.Design)}
	recommendH := &recommend.Handler{Defaults: cfg.Design}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/design/generate", designH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/design/stream", designH.Stream).Methods("GET")
	secureApi.HandleFunc("/tools/design/apply", recommendH.Apply).Methods("POST")
	secureApi.HandleFunc("/tools/mill/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/mill/import", importH.Mill).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/csv", reportH.CSV).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.XLSX).Methods("POST")
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, keeping info")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := auth.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	defer db.Close()
	users := repo.NewPostgresUserDB(db)
	if err := users.EnsureSchema(ctx); err != nil {
		log.WithError(err).Fatal("schema setup failed")
	}

	router := mux.NewRouter()
	HandleList(router, cfg, users)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.WithFields(log.Fields{"addr": cfg.Addr, "tls": cfg.TLS()}).Info("starting server")
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	wg.Wait()
	log.Info("server stopped")
}
