package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"exchanger/models"

	"github.com/redis/go-redis/v9"
)

// StatusEvent is published to the owner channel after every successful
// status change.
type StatusEvent struct {
	OrderID   string        `json:"order_id"`
	Book      models.Book   `json:"book"`
	OwnerID   int64         `json:"owner_id"`
	NewStatus models.Status `json:"new_status"`
	At        time.Time     `json:"at"`
}

type NotifyController struct {
	rdb    *redis.Client
	prefix string
}

func NewNotifyController(rdb *redis.Client, prefix string) *NotifyController {
	return &NotifyController{
		rdb:    rdb,
		prefix: prefix,
	}
}

// Channel is "<prefix>:<book>:<owner_id>", e.g. "orders:trader:42".
func (c *NotifyController) Channel(book models.Book, ownerID int64) string {
	return fmt.Sprintf("%s:%s:%d", c.prefix, book, ownerID)
}

func (c *NotifyController) Publish(ctx context.Context, event StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return c.rdb.Publish(ctx, c.Channel(event.Book, event.OwnerID), payload).Err()
}
