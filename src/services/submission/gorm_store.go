package submission

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"QuickTech-Backend/src/models"
)

type submissionRow struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Type        string            `gorm:"size:16;index;not null"`
	Data        datatypes.JSONMap `gorm:"not null"`
	CreatedAt   time.Time         `gorm:"not null"`
	Email       string            `gorm:"not null;default:''"`
	PhoneNumber string            `gorm:"not null;default:''"`
	Viewed      bool              `gorm:"not null;default:false"`
}

func (submissionRow) TableName() string {
	return "form_submissions"
}

func (r submissionRow) toModel() models.Submission {
	data := map[string]any(r.Data)
	if data == nil {
		data = map[string]any{}
	}
	return models.Submission{
		ID:          r.ID,
		Type:        models.SubmissionType(r.Type),
		Data:        data,
		CreatedAt:   r.CreatedAt.UTC(),
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Viewed:      r.Viewed,
	}
}

// GormStore keeps submissions in a SQL table through gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the submissions table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&submissionRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Create(ctx context.Context, in models.NewSubmission) (models.Submission, error) {
	row := submissionRow{
		Type:        string(in.Type),
		Data:        datatypes.JSONMap(in.Data),
		CreatedAt:   in.CreatedAt,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if row.Data == nil {
		row.Data = datatypes.JSONMap{}
	}
	if err := g.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Submission{}, err
	}
	return row.toModel(), nil
}

func (g *GormStore) List(ctx context.Context) ([]models.Submission, error) {
	var rows []submissionRow
	if err := g.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Submission, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (g *GormStore) GetByID(ctx context.Context, id int64) (models.Submission, error) {
	var row submissionRow
	err := g.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Submission{}, ErrNotFound
	}
	if err != nil {
		return models.Submission{}, err
	}
	return row.toModel(), nil
}

func (g *GormStore) MarkViewed(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row submissionRow
		if err := tx.Select("id").First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&submissionRow{}).Where("id = ?", id).Update("viewed", true).Error
	})
}
