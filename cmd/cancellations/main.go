// Job - reservation cancellations
// RabbitMQ consumer -> reversal transactions, confirmations published back
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"go.uber.org/zap"

	db "github.com/davidcortesdev/differentroads-loyalty/internal/db"
	rabbit "github.com/davidcortesdev/differentroads-loyalty/internal/external/rabbitmq"
	interf "github.com/davidcortesdev/differentroads-loyalty/internal/interfaces"
	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	services "github.com/davidcortesdev/differentroads-loyalty/internal/services"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	var storage interf.LedgerStorage
	dt, err := db.NewPointsDB(logger)
	if err != nil {
		logger.Error(err.Error())
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
	semenv := os.Getenv("POINTS_CANCEL_COUNT")
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

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.PointsService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			reservationId, err := serv.ProcessCancellation(ctx, string(msg.Body))
			if err != nil {
				logger.Error(err.Error())
				// a repeated cancellation is already settled, confirm it
				success := errors.Is(err, model.ErrAlreadyReversed)
				if reservationId != "" {
					_ = reader.Processed(ctx, reservationId, success)
				}
				continue
			}
			err = reader.Processed(ctx, reservationId, true)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}
