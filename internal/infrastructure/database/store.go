package database

import (
	"context"
	"fmt"

	"ndaje_storefront/internal/infrastructure/config"
	"ndaje_storefront/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// NewKeyValueStore builds the backend selected by STORE_BACKEND. The returned
// closer releases backend connections and is never nil.
func NewKeyValueStore(ctx context.Context, cfg *config.Config) (interfaces.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		logrus.Infof("[store][database] using in-memory backend")
		return NewMemoryStore(), noop, nil
	case config.StoreBackendRedis:
		client, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		logrus.Infof("[store][database] using redis backend addr=%s prefix=%s", cfg.Redis.Addr, cfg.Redis.KeyPrefix)
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client.Close, nil
	case config.StoreBackendDynamoDB:
		ddb, err := ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		logrus.Infof("[store][database] using dynamodb backend table=%s region=%s endpoint=%s", cfg.DynamoDB.Table, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		return NewDynamoDBStore(ddb, cfg.DynamoDB.Table), noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
