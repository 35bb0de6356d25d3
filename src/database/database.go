package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectMongo เชื่อมต่อ MongoDB และตรวจสอบด้วย ping ก่อนคืนค่า database
func ConnectMongo(ctx context.Context, uri, dbName string, log *zap.Logger) (*mongo.Database, func(context.Context) error, error) {
	if uri == "" {
		return nil, nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info("MongoDB connected", zap.String("db", dbName))
	return client.Database(dbName), client.Disconnect, nil
}
