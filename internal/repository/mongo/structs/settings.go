package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

type PairStatus string

const (
	Enabled  PairStatus = "ENABLED"
	Disabled PairStatus = "DISABLED"
)

func (s PairStatus) ToString() string {
	return string(s)
}

// PairSettings tells the rate poller which Garantex market backs a pair.
type PairSettings struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Currency string             `bson:"currency"`
	FiatCode string             `bson:"fiat_code"`
	Market   string             `bson:"market"`
	Status   string             `bson:"status"`
}

func (s *PairSettings) Enabled() bool {
	return s.Status == Enabled.ToString()
}
