package usecasees

import (
	"context"

	"exchanger/internal/controllers"
	"exchanger/internal/repository/postgres"
	"exchanger/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type authUseCase struct {
	cryptoController controllers.CryptoCtrl
	userRepo         postgres.UserRepo

	logger *logrus.Logger
}

func NewAuthUseCase(
	crypto controllers.CryptoCtrl,
	userRepo postgres.UserRepo,
	logger *logrus.Logger,
) *authUseCase {
	return &authUseCase{
		cryptoController: crypto,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Login checks the credentials of a user or a trader and issues an access
// token. Superusers get the admin role. Unknown accounts, wrong passwords and
// inactive traders all yield models.ErrUnauthorized.
func (u *authUseCase) Login(ctx context.Context, email, password string, role models.Role) (string, error) {
	var (
		ownerID int64
		hash    string
		granted models.Role
	)

	switch role {
	case models.RoleUser, models.RoleAdmin:
		user, err := u.userRepo.GetUserByEmail(ctx, email)
		if err != nil {
			return "", u.deny(err, email)
		}

		ownerID, hash, granted = user.ID, user.PasswordHash, models.RoleUser
		if user.IsSuperuser {
			granted = models.RoleAdmin
		}
	case models.RoleTrader:
		trader, err := u.userRepo.GetTraderByEmail(ctx, email)
		if err != nil {
			return "", u.deny(err, email)
		}

		if !trader.Access {
			return "", models.ErrUnauthorized
		}

		ownerID, hash, granted = trader.ID, trader.PasswordHash, models.RoleTrader
	default:
		return "", &models.ValidationError{Field: "role", Reason: "must be user or trader"}
	}

	if !u.cryptoController.VerifyPassword(password, hash) {
		return "", models.ErrUnauthorized
	}

	return u.cryptoController.IssueToken(ownerID, granted)
}

func (u *authUseCase) deny(err error, email string) error {
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		u.logger.WithField("email", email).Debug("login for unknown account")
		return models.ErrUnauthorized
	}

	return err
}
