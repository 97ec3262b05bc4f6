package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat_backend/internal/feature/chat/domain"
	"chat_backend/internal/feature/chat/domain/entity"
)

func TestUserUsecase_SignIn(t *testing.T) {
	t.Parallel()

	valid := entity.User{ID: 1, UserName: "ana", AvatarURL: "https://x/a.png", AccessToken: "tok-1"}

	t.Run("success: trimmed user is stored", func(t *testing.T) {
		t.Parallel()
		var stored *entity.User
		store := &mockUserStore{
			UpsertUserFunc: func(ctx context.Context, user *entity.User) error {
				stored = user
				return nil
			},
		}

		in := valid
		in.UserName = "  ana  "
		err := NewUserUsecase(store).SignIn(context.Background(), in)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, valid, *stored)
	})

	invalid := []struct {
		name   string
		mutate func(u *entity.User)
	}{
		{"zero id", func(u *entity.User) { u.ID = 0 }},
		{"negative id", func(u *entity.User) { u.ID = -4 }},
		{"blank name", func(u *entity.User) { u.UserName = "   " }},
		{"empty token", func(u *entity.User) { u.AccessToken = "" }},
	}
	for _, tt := range invalid {
		t.Run("failure: "+tt.name, func(t *testing.T) {
			t.Parallel()
			called := false
			store := &mockUserStore{
				UpsertUserFunc: func(ctx context.Context, user *entity.User) error {
					called = true
					return nil
				},
			}

			in := valid
			tt.mutate(&in)
			err := NewUserUsecase(store).SignIn(context.Background(), in)

			assert.ErrorIs(t, err, ErrInvalidUser)
			assert.False(t, called, "store must not be reached")
		})
	}

	t.Run("failure: store error is returned as is", func(t *testing.T) {
		t.Parallel()
		storeErr := &domain.StoreError{Op: "upsert user", Code: "23505", Err: errors.New("duplicate key")}
		store := &mockUserStore{
			UpsertUserFunc: func(ctx context.Context, user *entity.User) error {
				return storeErr
			},
		}

		err := NewUserUsecase(store).SignIn(context.Background(), valid)

		assert.Same(t, storeErr, err)
	})
}

func TestUserUsecase_Authenticate(t *testing.T) {
	t.Parallel()

	ana := &entity.User{ID: 1, UserName: "ana", AccessToken: "tok-1"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		store := &mockUserStore{
			GetUserByAccessTokenOrFailFunc: func(ctx context.Context, accessToken string) (*entity.User, error) {
				assert.Equal(t, "tok-1", accessToken)
				return ana, nil
			},
		}

		u, err := NewUserUsecase(store).Authenticate(context.Background(), "tok-1")

		require.NoError(t, err)
		assert.Equal(t, ana, u)
	})

	t.Run("empty token skips the store", func(t *testing.T) {
		t.Parallel()
		store := &mockUserStore{
			GetUserByAccessTokenOrFailFunc: func(ctx context.Context, accessToken string) (*entity.User, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}

		u, err := NewUserUsecase(store).Authenticate(context.Background(), "")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		u, err := NewUserUsecase(&mockUserStore{}).Authenticate(context.Background(), "nope")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserUsecase_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		ana := &entity.User{ID: 1, UserName: "ana", AccessToken: "tok-1"}
		store := &mockUserStore{
			GetUserByAccessTokenFunc: func(ctx context.Context, accessToken string) (*entity.User, bool, error) {
				return ana, true, nil
			},
		}

		u, found, err := NewUserUsecase(store).Lookup(context.Background(), "tok-1")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ana, u)
	})

	t.Run("absent is not an error", func(t *testing.T) {
		t.Parallel()

		u, found, err := NewUserUsecase(&mockUserStore{}).Lookup(context.Background(), "nope")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, u)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		store := &mockUserStore{
			GetUserByAccessTokenFunc: func(ctx context.Context, accessToken string) (*entity.User, bool, error) {
				t.Fatal("store must not be called")
				return nil, false, nil
			},
		}

		u, found, err := NewUserUsecase(store).Lookup(context.Background(), "")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, u)
	})
}
