package repository

import (
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type TagRepository interface {
	Create(tag *model.Tag) error
	FindActive() ([]model.Tag, error)
	FindByIDs(ids []uint) ([]model.Tag, error)
	FindByName(name string) (*model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *model.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		logger.Error("Failed to create tag", err, map[string]interface{}{
			"name": tag.Name,
		})
		return err
	}
	return nil
}

func (r *tagRepository) FindActive() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Where("status = ?", model.TagActive).Order("name ASC").Find(&tags).Error; err != nil {
		logger.Error("Failed to list active tags", err, nil)
		return nil, err
	}
	return tags, nil
}

// FindByIDs returns only active tags among the requested ids; inactive or
// unknown ids are silently dropped.
func (r *tagRepository) FindByIDs(ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	if err := r.db.Where("id IN ? AND status = ?", ids, model.TagActive).Find(&tags).Error; err != nil {
		logger.Error("Failed to load tags by ids", err, nil)
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByName(name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
