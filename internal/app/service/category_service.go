package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
)

var ErrCategoryNotFound = errors.New("categoria nu a fost găsită")

// CategoryFieldRules is the attribute policy published to clients so the
// form can hide non-permitted fields before submit. Choices carries the
// Romanian label table for each permitted enumerated field.
type CategoryFieldRules struct {
	Group     *model.CategoryGroup      `json:"group"`
	Permitted []string                  `json:"permitted_fields"`
	Required  []string                  `json:"required_fields"`
	Choices   map[string]map[int]string `json:"choices"`
}

type CategoryService interface {
	ListCategories() ([]model.Category, error)
	ListTree() ([]model.Category, error)
	GetBySlug(slug string) (*model.Category, error)
	FieldRules(id uint) (*CategoryFieldRules, error)
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	return s.categories.FindAll()
}

func (s *categoryService) ListTree() ([]model.Category, error) {
	return s.categories.FindRoots()
}

func (s *categoryService) GetBySlug(slug string) (*model.Category, error) {
	category, err := s.categories.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) FieldRules(id uint) (*CategoryFieldRules, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	rules := &CategoryFieldRules{
		Group:   category.Group,
		Choices: map[string]map[int]string{},
	}
	if category.Group != nil {
		if rule, ok := model.GroupRules[*category.Group]; ok {
			rules.Permitted = rule.Permitted
			rules.Required = rule.Required
		}
	}
	for _, field := range rules.Permitted {
		if choices := model.FieldChoices(field); choices != nil {
			rules.Choices[field] = choices
		}
	}
	return rules, nil
}
