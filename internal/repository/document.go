package repository

import (
	"context"
	"errors"

	"hoahub/internal/models"

	"gorm.io/gorm"
)

// DocumentRepository defines persistence operations for group documents.
// Authorization (admin gating) lives in the handlers; this layer only owns
// storage semantics.
type DocumentRepository interface {
	// GetByID resolves a document scoped to its owning group; a document ID
	// from another group is not found.
	GetByID(ctx context.Context, groupID, documentID uint) (*models.Document, error)
	ListForGroup(ctx context.Context, groupID uint) ([]models.Document, error)
	Create(ctx context.Context, doc *models.Document) error
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, doc *models.Document) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository returns a new DocumentRepository implementation.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) GetByID(ctx context.Context, groupID, documentID uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND hoa_group_id = ?", documentID, groupID).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Document not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &doc, nil
}

func (r *documentRepository) ListForGroup(ctx context.Context, groupID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.WithContext(ctx).
		Where("hoa_group_id = ?", groupID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return docs, nil
}

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	// Save refreshes updated_at via GORM's autoUpdateTime handling.
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Delete(doc).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
