// HTTP API - balances, history, categories, distribution previews,
// redemption commits and location lookups
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	api "github.com/davidcortesdev/differentroads-loyalty/internal/api"
	db "github.com/davidcortesdev/differentroads-loyalty/internal/db"
	reservations "github.com/davidcortesdev/differentroads-loyalty/internal/external/reservations"
	interf "github.com/davidcortesdev/differentroads-loyalty/internal/interfaces"
	locations "github.com/davidcortesdev/differentroads-loyalty/internal/locations"
	services "github.com/davidcortesdev/differentroads-loyalty/internal/services"
	observ "github.com/davidcortesdev/differentroads-loyalty/observability/otel"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("LOYALTY_PORT")
	if port == "" {
		panic("env LOYALTY_PORT is not set")
	}

	// tracing
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shutdownTracer := observ.InitTracer(ctx)
	defer shutdownTracer()

	// database
	var storage interf.LedgerStorage
	dt, err := db.NewPointsDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// cache
	var cache interf.BalanceCache
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// reservations backend
	resv, err := reservations.NewClient()
	if err != nil {
		panic(err)
	}

	// locations backend
	loc, err := locations.NewService()
	if err != nil {
		panic(err)
	}

	serv := services.NewPointService(logger, storage, cache, resv)

	// api handlers
	handler := api.NewHandler(serv, loc, logger)
	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", otelhttp.NewHandler(api.MiddlewareLog()(handler), "loyalty-api"))

	srv := &http.Server{
		Handler:      root,
		Addr:         ":" + port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancelsrv := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelsrv()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
