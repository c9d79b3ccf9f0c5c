package main

import (
	"context"
	"fmt"

	"turnover_service/internal/adapter/persistence/documentstore"
	"turnover_service/internal/config"
	"turnover_service/internal/infrastructure/database"
	"turnover_service/pkg/metrics"
)

// openDocumentStore connects the configured backend and wraps it with store
// metrics. The returned func releases the backend client.
func openDocumentStore(ctx context.Context, cfg config.StoreConfig, m *metrics.Metrics) (documentstore.Store, func(), error) {
	var (
		store   documentstore.Store
		closeFn = func() {}
	)

	switch cfg.Driver {
	case config.DriverDynamoDB:
		client, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		store = documentstore.NewDynamoStore(client, cfg.DynamoTablePrefix)
	case config.DriverMongoDB:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, nil, err
		}
		store = documentstore.NewMongoStore(client.Database(cfg.MongoDatabase))
		closeFn = func() { _ = client.Disconnect(context.Background()) }
	case config.DriverFirestore:
		client, err := database.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, nil, err
		}
		store = documentstore.NewFirestoreStore(client)
		closeFn = func() { _ = client.Close() }
	case config.DriverMemory:
		store = documentstore.NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	return documentstore.NewInstrumentedStore(store, m), closeFn, nil
}
