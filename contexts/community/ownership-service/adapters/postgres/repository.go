package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "harvest/contexts/community/ownership-service/domain/errors"
	"harvest/contexts/community/ownership-service/ports"
)

// Repository binds ownership operations to the shared businesses table.
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

func (r *Repository) GetBusiness(ctx context.Context, businessID int64) (ports.BusinessProfile, bool, error) {
	var row businessRow
	err := r.db.WithContext(ctx).
		Table("businesses").
		Where("id = ?", businessID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.BusinessProfile{}, false, nil
		}
		return ports.BusinessProfile{}, false, err
	}
	return ports.BusinessProfile(row), true, nil
}

func (r *Repository) GetBusinessByOwner(ctx context.Context, userID int64) (ports.BusinessProfile, bool, error) {
	var row businessRow
	err := r.db.WithContext(ctx).
		Table("businesses").
		Where("owner_user_id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.BusinessProfile{}, false, nil
		}
		return ports.BusinessProfile{}, false, err
	}
	return ports.BusinessProfile(row), true, nil
}

func (r *Repository) ListUnclaimedApproved(ctx context.Context) ([]ports.BusinessProfile, error) {
	var rows []businessRow
	if err := r.db.WithContext(ctx).
		Table("businesses").
		Where("status = ? AND owner_user_id IS NULL", "approved").
		Order("name ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.BusinessProfile, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.BusinessProfile(row))
	}
	return items, nil
}

// ClaimBusiness is the race-safe side of the claim protocol: a single
// conditional UPDATE that only lands on an approved, unowned row. The unique
// index on owner_user_id backstops a single user racing their own claims.
func (r *Repository) ClaimBusiness(ctx context.Context, businessID int64, userID int64, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Table("businesses").
		Where("id = ? AND owner_user_id IS NULL AND status = ?", businessID, "approved").
		Updates(map[string]any{
			"owner_user_id": userID,
			"updated_at":    now.UTC(),
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return false, domainerrors.ErrAlreadyOwnsBusiness
		}
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, businessID int64, updates map[string]any, now time.Time) (ports.BusinessProfile, error) {
	columns := make(map[string]any, len(updates)+1)
	for column, value := range updates {
		columns[column] = value
	}
	columns["updated_at"] = now.UTC()

	if err := r.db.WithContext(ctx).
		Table("businesses").
		Where("id = ?", businessID).
		Updates(columns).
		Error; err != nil {
		return ports.BusinessProfile{}, err
	}

	profile, found, err := r.GetBusiness(ctx, businessID)
	if err != nil {
		return ports.BusinessProfile{}, err
	}
	if !found {
		return ports.BusinessProfile{}, domainerrors.ErrBusinessNotFound
	}
	return profile, nil
}

type businessRow struct {
	ID             int64     `gorm:"column:id"`
	OwnerUserID    *int64    `gorm:"column:owner_user_id"`
	Name           string    `gorm:"column:name"`
	Category       string    `gorm:"column:category"`
	Description    string    `gorm:"column:description"`
	Address        string    `gorm:"column:address"`
	Phone          string    `gorm:"column:phone"`
	Email          string    `gorm:"column:email"`
	Website        string    `gorm:"column:website"`
	Facebook       string    `gorm:"column:facebook"`
	Instagram      string    `gorm:"column:instagram"`
	ImageURL       string    `gorm:"column:image_url"`
	Status         string    `gorm:"column:status"`
	SubmittedBy    string    `gorm:"column:submitted_by"`
	SubmitterEmail string    `gorm:"column:submitter_email"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
