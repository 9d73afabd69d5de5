package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"harvest/contexts/community/directory-service/domain/entities"
	"harvest/contexts/community/directory-service/ports"
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

func (r *Repository) CreateEvent(ctx context.Context, event entities.EventSubmission) (entities.EventSubmission, error) {
	row := eventModelFromEntity(event)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.EventSubmission{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEventsByStatus(ctx context.Context, status entities.SubmissionStatus, order ports.EventOrder) ([]entities.EventSubmission, error) {
	tx := r.db.WithContext(ctx).Where("status = ?", string(status))
	switch order {
	case ports.EventOrderCreatedAtDesc:
		tx = tx.Order("created_at DESC")
	default:
		tx = tx.Order("date ASC")
	}

	var rows []eventModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.EventSubmission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateBusiness(ctx context.Context, business entities.BusinessSubmission) (entities.BusinessSubmission, error) {
	row := businessModelFromEntity(business)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.BusinessSubmission{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListBusinessesByStatus(ctx context.Context, status entities.SubmissionStatus, order ports.BusinessOrder) ([]entities.BusinessSubmission, error) {
	tx := r.db.WithContext(ctx).Where("status = ?", string(status))
	switch order {
	case ports.BusinessOrderCreatedAtDesc:
		tx = tx.Order("created_at DESC")
	default:
		tx = tx.Order("name ASC")
	}

	var rows []businessModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.BusinessSubmission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type eventModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title        string    `gorm:"column:title;size:255;not null"`
	Date         time.Time `gorm:"column:date;not null"`
	Time         string    `gorm:"column:time;size:100;not null"`
	Location     string    `gorm:"column:location;size:255;not null"`
	Category     string    `gorm:"column:category;size:32;not null;index"`
	Description  string    `gorm:"column:description;type:text;not null"`
	ContactEmail string    `gorm:"column:contact_email;size:320;not null"`
	Status       string    `gorm:"column:status;size:16;not null;default:pending;index"`
	SubmittedBy  string    `gorm:"column:submitted_by;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

func (eventModel) TableName() string {
	return "events"
}

func eventModelFromEntity(event entities.EventSubmission) eventModel {
	return eventModel{
		ID:           event.ID,
		Title:        event.Title,
		Date:         event.Date.UTC(),
		Time:         event.Time,
		Location:     event.Location,
		Category:     string(event.Category),
		Description:  event.Description,
		ContactEmail: event.ContactEmail,
		Status:       string(event.Status),
		SubmittedBy:  event.SubmittedBy,
		CreatedAt:    event.CreatedAt.UTC(),
		UpdatedAt:    event.UpdatedAt.UTC(),
	}
}

func (m eventModel) toEntity() entities.EventSubmission {
	return entities.EventSubmission{
		ID:           m.ID,
		Title:        m.Title,
		Date:         m.Date,
		Time:         m.Time,
		Location:     m.Location,
		Category:     entities.EventCategory(m.Category),
		Description:  m.Description,
		ContactEmail: m.ContactEmail,
		Status:       entities.SubmissionStatus(m.Status),
		SubmittedBy:  m.SubmittedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type businessModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerUserID    *int64    `gorm:"column:owner_user_id;uniqueIndex:businesses_owner_unique"`
	Name           string    `gorm:"column:name;size:255;not null"`
	Category       string    `gorm:"column:category;size:32;not null;index"`
	Description    string    `gorm:"column:description;type:text;not null"`
	Address        string    `gorm:"column:address;size:500"`
	Phone          string    `gorm:"column:phone;size:50"`
	Email          string    `gorm:"column:email;size:320"`
	Website        string    `gorm:"column:website;size:500"`
	Facebook       string    `gorm:"column:facebook;size:500"`
	Instagram      string    `gorm:"column:instagram;size:500"`
	ImageURL       string    `gorm:"column:image_url;size:1000"`
	Status         string    `gorm:"column:status;size:16;not null;default:pending;index"`
	SubmittedBy    string    `gorm:"column:submitted_by;size:255"`
	SubmitterEmail string    `gorm:"column:submitter_email;size:320;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

func (businessModel) TableName() string {
	return "businesses"
}

func businessModelFromEntity(business entities.BusinessSubmission) businessModel {
	return businessModel{
		ID:             business.ID,
		OwnerUserID:    business.OwnerUserID,
		Name:           business.Name,
		Category:       string(business.Category),
		Description:    business.Description,
		Address:        business.Address,
		Phone:          business.Phone,
		Email:          business.Email,
		Website:        business.Website,
		Facebook:       business.Facebook,
		Instagram:      business.Instagram,
		ImageURL:       business.ImageURL,
		Status:         string(business.Status),
		SubmittedBy:    business.SubmittedBy,
		SubmitterEmail: business.SubmitterEmail,
		CreatedAt:      business.CreatedAt.UTC(),
		UpdatedAt:      business.UpdatedAt.UTC(),
	}
}

func (m businessModel) toEntity() entities.BusinessSubmission {
	return entities.BusinessSubmission{
		ID:             m.ID,
		OwnerUserID:    m.OwnerUserID,
		Name:           m.Name,
		Category:       entities.BusinessCategory(m.Category),
		Description:    m.Description,
		Address:        m.Address,
		Phone:          m.Phone,
		Email:          m.Email,
		Website:        m.Website,
		Facebook:       m.Facebook,
		Instagram:      m.Instagram,
		ImageURL:       m.ImageURL,
		Status:         entities.SubmissionStatus(m.Status),
		SubmittedBy:    m.SubmittedBy,
		SubmitterEmail: m.SubmitterEmail,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// Models exposes the row models owned by this context for AutoMigrate at
// bootstrap. Other community services bind to the same tables read/write
// through their own adapters.
func Models() []any {
	return []any{&eventModel{}, &businessModel{}}
}
