// Job - completed trip events
// Kafka polling -> accrual transactions with a future commit date
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"go.uber.org/zap"

	db "github.com/davidcortesdev/differentroads-loyalty/internal/db"
	kafka "github.com/davidcortesdev/differentroads-loyalty/internal/external/kafka"
	interf "github.com/davidcortesdev/differentroads-loyalty/internal/interfaces"
	services "github.com/davidcortesdev/differentroads-loyalty/internal/services"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("trips")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

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

	// services
	serv := services.NewPointService(logger, storage, cache, nil)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("POINTS_TRIPS_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			trip, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(trip string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				if err := serv.TripCompleted(ctx, trip); err != nil {
					logger.Error(err.Error())
				}
			}(trip)
		}
	}
	wg.Wait()
}
