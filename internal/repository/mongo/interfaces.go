package mongo

import (
	"context"

	"exchanger/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockery --case=snake --name=SettingsRepo

type SettingsRepo interface {
	SetDefault(ctx context.Context) error
	Load(ctx context.Context, currency, fiatCode string) (*structs.PairSettings, error)
	ListEnabled(ctx context.Context) ([]structs.PairSettings, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status structs.PairStatus) error
}
