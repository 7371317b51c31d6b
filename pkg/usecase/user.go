package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/logging"
)

// UserUseCase reconciles backend user records with authenticated identities
type UserUseCase struct {
	client interfaces.ContentClient
}

// NewUserUseCase creates a UserUseCase
func NewUserUseCase(client interfaces.ContentClient) *UserUseCase {
	return &UserUseCase{client: client}
}

// EnsureUser idempotently guarantees a backend user record exists for an
// authenticated identity and keeps first name, last name and the Entra object
// id current. When nothing differs, no write is issued at all. Errors
// propagate; the sign-in caller logs and keeps rendering.
func (uc *UserUseCase) EnsureUser(ctx context.Context, email, firstName, lastName, entraID string) (*model.User, error) {
	logger := logging.From(ctx)

	existing, userID, err := uc.client.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("email", email))
	}

	if existing != nil && userID != 0 {
		staged := *existing
		var changed []string

		if firstName != "" && existing.FirstName != firstName {
			staged.FirstName = firstName
			changed = append(changed, "firstName")
		}
		if lastName != "" && existing.LastName != lastName {
			staged.LastName = lastName
			changed = append(changed, "lastName")
		}
		if entraID != "" && existing.EntraID != entraID {
			staged.EntraID = entraID
			changed = append(changed, "entraId")
		}

		if len(changed) == 0 {
			logger.Debug("user profile is up to date", "email", email)
			return existing, nil
		}

		staged.UpdatedAt = time.Now().UTC()
		logger.Info("updating user profile", "email", email, "changed", changed)

		updated, err := uc.client.UpdateUser(ctx, userID, &staged)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update user",
				goerr.V("email", email),
				goerr.V("user_id", userID),
			)
		}
		return updated, nil
	}

	logger.Info("creating user record for first sign-in", "email", email)

	now := time.Now().UTC()
	confirmed, blocked := true, false
	newUser := &model.User{
		Username:  email,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		EntraID:   entraID,
		Provider:  model.UserProvider,
		Confirmed: &confirmed,
		Blocked:   &blocked,
		Role:      "authenticated",
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.client.CreateUser(ctx, newUser)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V("email", email))
	}
	return created, nil
}

// GetByEmail resolves a user record by email, or nil when none exists
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, _, err := uc.client.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("email", email))
	}
	return user, nil
}
