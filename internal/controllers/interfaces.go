package controllers

import (
	"context"
	"net/url"

	"exchanger/models"

	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=CryptoCtrl
//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=NotifyCtrl

type ClientCtrl interface {
	Send(ctx context.Context, method string, url *url.URL, body []byte) ([]byte, error)
}

type CryptoCtrl interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
	IssueToken(ownerID int64, role models.Role) (string, error)
	ParseToken(token string) (*Claims, error)
}

type TgmCtrl interface {
	Send(text string) error
	CheckChatID(chatID int64) bool
	Update(msgID int, text string) error
	GetUpdates() tgmBotAPI.UpdatesChannel
}

type NotifyCtrl interface {
	Publish(ctx context.Context, event StatusEvent) error
}
