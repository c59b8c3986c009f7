// Job - activation of matured accruals (transactions are flagged and the
// points land on the balance once the cooldown date has passed)
package main

import (
	"context"

	"go.uber.org/zap"

	db "github.com/davidcortesdev/differentroads-loyalty/internal/db"
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

	serv := services.NewPointService(logger, storage, cache, nil)
	err = serv.CommitOnDate(context.Background())
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job Tnx commit on date is finished")
}
