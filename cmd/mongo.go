package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (a *App) initMongo(ctx context.Context) error {
	opts := options.Client().ApplyURI(a.Config.Mongo.DSN())

	if a.Config.Mongo.User != "" {
		opts.SetAuth(options.Credential{
			AuthSource: a.Config.Mongo.DBName,
			Username:   a.Config.Mongo.User,
			Password:   a.Config.Mongo.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return err
	}

	a.Mongo = client

	return nil
}
