package structs

import "github.com/shopspring/decimal"

type DepthLevel struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
	Amount decimal.Decimal `json:"amount"`
	Factor decimal.Decimal `json:"factor"`
	Type   string          `json:"type"`
}

// Depth is the order book returned by GET /api/v2/depth.
type Depth struct {
	Timestamp int64        `json:"timestamp"`
	Asks      []DepthLevel `json:"asks"`
	Bids      []DepthLevel `json:"bids"`
}
