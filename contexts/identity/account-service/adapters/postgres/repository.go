package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"harvest/contexts/identity/account-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OpenID       string    `gorm:"column:open_id;uniqueIndex:app_users_open_id_unique;size:64;not null"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	LoginMethod  string    `gorm:"column:login_method;size:64"`
	Role         string    `gorm:"column:role;size:20;not null;default:user"`
	LastSignedIn time.Time `gorm:"column:last_signed_in"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "app_users"
}

func (m userModel) toPorts() ports.User {
	return ports.User{
		ID:           m.ID,
		OpenID:       m.OpenID,
		Name:         m.Name,
		Email:        m.Email,
		LoginMethod:  m.LoginMethod,
		Role:         m.Role,
		LastSignedIn: m.LastSignedIn,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UpsertUser inserts the row or refreshes the sign-in fields on conflict.
// Role is only written when the caller forces it.
func (r *Repository) UpsertUser(ctx context.Context, input ports.UserUpsert) (ports.User, error) {
	row := userModel{
		OpenID:       input.OpenID,
		Name:         input.Name,
		Email:        input.Email,
		LoginMethod:  input.LoginMethod,
		Role:         ports.RoleUser,
		LastSignedIn: input.LastSignedIn,
		CreatedAt:    input.LastSignedIn,
		UpdatedAt:    input.LastSignedIn,
	}
	assignments := map[string]any{
		"name":           input.Name,
		"email":          input.Email,
		"login_method":   input.LoginMethod,
		"last_signed_in": input.LastSignedIn,
		"updated_at":     input.LastSignedIn,
	}
	if input.Role != "" {
		row.Role = input.Role
		assignments["role"] = input.Role
	}

	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&row)
	if create.Error != nil {
		return ports.User{}, create.Error
	}

	var stored userModel
	if err := r.db.WithContext(ctx).Where("open_id = ?", input.OpenID).First(&stored).Error; err != nil {
		return ports.User{}, err
	}
	return stored.toPorts(), nil
}

func (r *Repository) GetUserByOpenID(ctx context.Context, openID string) (ports.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.User{}, false, nil
	}
	if err != nil {
		return ports.User{}, false, err
	}
	return row.toPorts(), true, nil
}

// Models lists the tables this adapter owns for migration.
func Models() []any {
	return []any{&userModel{}}
}
