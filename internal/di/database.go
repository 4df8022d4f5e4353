package di

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/config"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

// MongoDatabase wraps the MongoDB handle and its client
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides MongoDB and Redis dependencies
var DatabaseModule = fx.Module("database",
	fx.Provide(
		provideMongoDatabase,
		provideRedisClient,
	),
	fx.Invoke(ensureIndexes),
)

func provideMongoDatabase(lc fx.Lifecycle, cfg *config.MongoConfig, logger *zap.Logger) (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	db := &MongoDatabase{
		DB:     client.Database(cfg.Name),
		Client: client,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Disconnecting from MongoDB")
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

func provideRedisClient(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Connecting to Redis", zap.String("addr", cfg.Addr()))
			return client.Ping(ctx).Err()
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return client
}

// ensureIndexes creates the indexes the query paths depend on
func ensureIndexes(mongoDB *MongoDatabase, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		entity.User{}.CollectionName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		entity.RefreshToken{}.CollectionName(): {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}},
		},
		entity.Cart{}.CollectionName(): {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		entity.Order{}.CollectionName(): {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		entity.Notification{}.CollectionName(): {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		entity.Invoice{}.CollectionName(): {
			{Keys: bson.D{{Key: "number", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := mongoDB.DB.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}
