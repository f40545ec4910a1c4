package mongo

import (
	"context"

	"exchanger/internal/repository/mongo/structs"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SettingsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewSettingsRepository(conn *mongo.Client) *SettingsRepository {
	collection := conn.Database("settings").Collection("pairs")

	return &SettingsRepository{conn: conn, collection: collection}
}

// DefaultPairs are the markets seeded on first start.
var DefaultPairs = []structs.PairSettings{
	{
		Currency: "USDT",
		FiatCode: "RUB",
		Market:   "usdtrub",
		Status:   structs.Enabled.ToString(),
	},
	{
		Currency: "BTC",
		FiatCode: "RUB",
		Market:   "btcrub",
		Status:   structs.Enabled.ToString(),
	},
}

// SetDefault inserts the default pairs that are not stored yet. Existing
// documents are left alone so an operator's status change survives restarts.
func (r *SettingsRepository) SetDefault(ctx context.Context) error {
	for _, pair := range DefaultPairs {
		check, err := r.Load(ctx, pair.Currency, pair.FiatCode)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}

		if check.ID.IsZero() {
			if _, err := r.collection.InsertOne(ctx, pair); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *SettingsRepository) Load(ctx context.Context, currency, fiatCode string) (*structs.PairSettings, error) {
	var result structs.PairSettings

	if err := r.collection.FindOne(ctx, bson.D{{Key: "currency", Value: currency}, {Key: "fiat_code", Value: fiatCode}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *SettingsRepository) ListEnabled(ctx context.Context) ([]structs.PairSettings, error) {
	cur, err := r.collection.Find(ctx, bson.D{{Key: "status", Value: structs.Enabled.ToString()}})
	if err != nil {
		return nil, err
	}

	out := []structs.PairSettings{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *SettingsRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status structs.PairStatus) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status.ToString()}}}},
	)
	if err != nil {
		return err
	}

	return nil
}
