// Package adapters provides the repository implementation for the chat feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chat_backend/internal/feature/chat/domain"
	"chat_backend/internal/feature/chat/domain/entity"
	"chat_backend/internal/feature/chat/usecase"
)

// UserRoomStore mediates every read and write against the users table, the
// rooms table and the rooms_with_activity view.
//
// It keeps no state besides the shared *gorm.DB handle, which is safe for
// concurrent use. Each method issues exactly one statement and never retries.
type UserRoomStore struct {
	db *gorm.DB
}

// Compile-time checks that UserRoomStore satisfies the consumer interfaces.
var (
	_ usecase.UserStore     = (*UserRoomStore)(nil)
	_ usecase.RoomDirectory = (*UserRoomStore)(nil)
)

// NewUserRoomStore creates a store bound to db.
func NewUserRoomStore(db *gorm.DB) *UserRoomStore {
	return &UserRoomStore{db: db}
}

// UpsertUser inserts the user or overwrites username, avatar_url and
// access_token of the row with the same id.
func (s *UserRoomStore) UpsertUser(ctx context.Context, u *entity.User) error {
	if u == nil {
		return &domain.StoreError{Op: "upsert user", Err: errors.New("user is nil")}
	}
	m := UserModelFromEntity(u)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "avatar_url", "access_token"}),
	}).Create(m).Error
	return wrapStoreError("upsert user", err)
}

// GetUserByAccessToken looks the user up by exact token match.
// It returns found=false with a nil error when no row matches.
func (s *UserRoomStore) GetUserByAccessToken(ctx context.Context, accessToken string) (*entity.User, bool, error) {
	var rows []UserModel
	// Two rows are enough to detect a broken uniqueness guarantee.
	if err := s.db.WithContext(ctx).
		Select("id", "username", "avatar_url").
		Where("access_token = ?", accessToken).
		Limit(2).
		Find(&rows).Error; err != nil {
		return nil, false, wrapStoreError("get user by access token", err)
	}

	switch len(rows) {
	case 0:
		return nil, false, nil
	case 1:
		u := rows[0].ToEntity()
		u.AccessToken = accessToken
		return u, true, nil
	default:
		return nil, false, &domain.StoreError{
			Op:  "get user by access token",
			Err: errors.New("access token resolves to more than one user"),
		}
	}
}

// GetUserByAccessTokenOrFail is the strict variant of GetUserByAccessToken.
// Absence is reported as domain.ErrUserNotFound.
func (s *UserRoomStore) GetUserByAccessTokenOrFail(ctx context.Context, accessToken string) (*entity.User, error) {
	u, found, err := s.GetUserByAccessToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// ListRooms returns every row of rooms_with_activity ordered by room id.
// An empty store yields an empty, non-nil slice.
func (s *UserRoomStore) ListRooms(ctx context.Context) ([]entity.Room, error) {
	var rows []RoomActivityModel
	if err := s.db.WithContext(ctx).
		Select("id", "name", "last_message_at").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapStoreError("list rooms", err)
	}

	rooms := make([]entity.Room, 0, len(rows))
	for i := range rows {
		rooms = append(rooms, rows[i].ToEntity())
	}
	return rooms, nil
}

// GetRoomName returns the name of the room with the given primary key.
// A missing room is reported as domain.ErrRoomNotFound.
func (s *UserRoomStore) GetRoomName(ctx context.Context, roomID int64) (string, error) {
	var names []string
	if err := s.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", roomID).
		Limit(1).
		Pluck("name", &names).Error; err != nil {
		return "", wrapStoreError("get room name", err)
	}
	if len(names) == 0 {
		return "", domain.ErrRoomNotFound
	}
	return names[0], nil
}

// wrapStoreError converts a driver error into a *domain.StoreError, keeping the
// Postgres SQLSTATE when one is available.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	se := &domain.StoreError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}
