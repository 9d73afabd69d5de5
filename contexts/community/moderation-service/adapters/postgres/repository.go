package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"harvest/contexts/community/moderation-service/ports"
)

// Repository binds the moderation queue to the shared events and businesses
// tables owned by the directory context.
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

func (r *Repository) ListPendingEvents(ctx context.Context) ([]ports.EventRow, error) {
	var rows []eventRow
	if err := r.db.WithContext(ctx).
		Table("events").
		Where("status = ?", "pending").
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.EventRow, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.EventRow(row))
	}
	return items, nil
}

func (r *Repository) ListPendingBusinesses(ctx context.Context) ([]ports.BusinessRow, error) {
	var rows []businessRow
	if err := r.db.WithContext(ctx).
		Table("businesses").
		Where("status = ?", "pending").
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.BusinessRow, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.BusinessRow(row))
	}
	return items, nil
}

func (r *Repository) UpdateEventStatus(ctx context.Context, eventID int64, status string, now time.Time) error {
	return r.db.WithContext(ctx).
		Table("events").
		Where("id = ?", eventID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now.UTC(),
		}).
		Error
}

func (r *Repository) UpdateBusinessStatus(ctx context.Context, businessID int64, status string, now time.Time) error {
	return r.db.WithContext(ctx).
		Table("businesses").
		Where("id = ?", businessID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now.UTC(),
		}).
		Error
}

type eventRow struct {
	ID           int64     `gorm:"column:id"`
	Title        string    `gorm:"column:title"`
	Date         time.Time `gorm:"column:date"`
	Time         string    `gorm:"column:time"`
	Location     string    `gorm:"column:location"`
	Category     string    `gorm:"column:category"`
	Description  string    `gorm:"column:description"`
	ContactEmail string    `gorm:"column:contact_email"`
	Status       string    `gorm:"column:status"`
	SubmittedBy  string    `gorm:"column:submitted_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
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
