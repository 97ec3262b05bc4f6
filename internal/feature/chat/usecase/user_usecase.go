package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"chat_backend/internal/feature/chat/domain"
	"chat_backend/internal/feature/chat/domain/entity"
)

// UserUsecase covers signing users in and resolving them from access tokens.
type UserUsecase struct {
	store UserStore
}

// NewUserUsecase creates a UserUsecase backed by store.
func NewUserUsecase(store UserStore) *UserUsecase {
	return &UserUsecase{store: store}
}

// SignIn records the identity handed over by the identity provider.
// Signing in again with the same ID replaces name, avatar and token.
func (u *UserUsecase) SignIn(ctx context.Context, user entity.User) error {
	user.UserName = strings.TrimSpace(user.UserName)
	if err := validateUser(user); err != nil {
		return err
	}
	if err := u.store.UpsertUser(ctx, &user); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("user_id", user.ID).Msg("upsert user failed")
		return err
	}
	log.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("user signed in")
	return nil
}

// Authenticate resolves the user owning accessToken.
// An empty token never reaches the store.
func (u *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, domain.ErrUserNotFound
	}
	return u.store.GetUserByAccessTokenOrFail(ctx, accessToken)
}

// Lookup is the lenient form of Authenticate: absence is not an error.
func (u *UserUsecase) Lookup(ctx context.Context, accessToken string) (*entity.User, bool, error) {
	if accessToken == "" {
		return nil, false, nil
	}
	return u.store.GetUserByAccessToken(ctx, accessToken)
}

func validateUser(user entity.User) error {
	switch {
	case user.ID <= 0:
		return fmt.Errorf("%w: id must be positive", ErrInvalidUser)
	case user.UserName == "":
		return fmt.Errorf("%w: user name is required", ErrInvalidUser)
	case user.AccessToken == "":
		return fmt.Errorf("%w: access token is required", ErrInvalidUser)
	}
	return nil
}
