package usecasees

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"exchanger/internal/controllers"
	mongoStructs "exchanger/internal/repository/mongo/structs"
	"exchanger/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const tgmTimeout = 10 * time.Second

type tgmUseCase struct {
	rateUseCase   *rateUseCase
	orderUseCase  *orderUseCase
	tgmController controllers.TgmCtrl
	loc           *time.Location
	logger        *logrus.Logger
}

func NewTgmUseCase(
	rateUseCase *rateUseCase,
	orderUseCase *orderUseCase,
	tgmController controllers.TgmCtrl,
	logger *logrus.Logger,
) *tgmUseCase {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		logger.WithField("method", "NewTgmUseCase").Debug(err)
		loc = time.UTC
	}

	return &tgmUseCase{
		rateUseCase:   rateUseCase,
		orderUseCase:  orderUseCase,
		tgmController: tgmController,
		loc:           loc,
		logger:        logger,
	}
}

// CommandProcessor answers operator commands until the updates channel closes.
func (u *tgmUseCase) CommandProcessor() {
	for update := range u.tgmController.GetUpdates() {
		if update.Message == nil || !u.tgmController.CheckChatID(update.Message.Chat.ID) {
			continue
		}

		u.Handle(update.Message.Command(), update.Message.CommandArguments())
	}
}

func (u *tgmUseCase) Handle(command, args string) {
	ctx, cancel := context.WithTimeout(context.Background(), tgmTimeout)
	defer cancel()

	switch command {
	case "ping":
		u.pingProc()
	case "stat":
		u.orderStatProc(ctx)
	case "rates":
		u.ratesProc(ctx)
	case "enable":
		u.pairStatusProc(ctx, args, mongoStructs.Enabled)
	case "disable":
		u.pairStatusProc(ctx, args, mongoStructs.Disabled)
	}
}

// pairStatusProc takes "BTC/RUB" or "BTC RUB".
func (u *tgmUseCase) pairStatusProc(ctx context.Context, args string, status mongoStructs.PairStatus) {
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == '/' || r == ' '
	})
	if len(parts) != 2 {
		u.send("[ Pairs ]\nusage: /enable BTC/RUB, /disable BTC/RUB")
		return
	}

	currency, fiatCode := strings.ToUpper(parts[0]), strings.ToUpper(parts[1])

	if err := u.rateUseCase.SetPairStatus(ctx, currency, fiatCode, status); err != nil {
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			u.send(fmt.Sprintf("[ Pairs ]\n%s/%s: unknown pair", currency, fiatCode))
			return
		}

		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	u.send(fmt.Sprintf("[ Pairs ]\n%s/%s: %s", currency, fiatCode, status))
}

func (u *tgmUseCase) orderStatProc(ctx context.Context) {
	stat, err := u.orderUseCase.Stat(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	msg := "[ Orders Stat 24h ]\n"

	for _, book := range []models.Book{models.BookExchange, models.BookTrader} {
		var total int64
		for _, n := range stat[book] {
			total += n
		}

		msg += fmt.Sprintf("Book:\t%s\nTotal:\t%d\n", book, total)

		for _, status := range models.Statuses {
			if n := stat[book][status]; n > 0 {
				msg += fmt.Sprintf("%s:\t%d\n", status, n)
			}
		}
	}

	u.send(msg)
}

func (u *tgmUseCase) ratesProc(ctx context.Context) {
	rates, err := u.rateUseCase.List(ctx)
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	msg := "[ Rates ]\n"
	for _, r := range rates {
		msg += fmt.Sprintf("%s/%s\tbuy:\t%s\tsell:\t%s\t%s\n",
			r.Currency,
			r.FiatCode,
			legString(r.BuyRate.Valid, r.BuyRate.Decimal.String()),
			legString(r.SellRate.Valid, r.SellRate.Decimal.String()),
			r.UpdatedAt.In(u.loc).Format(time.RFC822),
		)
	}

	u.send(msg)
}

func legString(valid bool, s string) string {
	if !valid {
		return "-"
	}

	return s
}

func (u *tgmUseCase) pingProc() {
	u.send(fmt.Sprintf("PONG [ %s ]", time.Now().In(u.loc).Format(time.RFC822)))
}

func (u *tgmUseCase) send(text string) {
	if err := u.tgmController.Send(text); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	}
}
