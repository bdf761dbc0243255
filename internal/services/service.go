package services

import (
	"toolroom/config"
	"toolroom/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Scheduler   *SchedulerService
	BlobStore   *BlobStoreService
}

func New(db database.DB, config config.Config) (Service, error) {
	transactionService := NewTransactionService(db)
	schedulerService := NewSchedulerService()

	blobStoreService, err := NewBlobStoreService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Transaction: transactionService,
		Scheduler:   schedulerService,
		BlobStore:   blobStoreService,
	}, nil
}
