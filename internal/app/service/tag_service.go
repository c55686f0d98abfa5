package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

var ErrTagNameTaken = errors.New("există deja o etichetă cu acest nume")

type TagService interface {
	ListActive() ([]model.Tag, error)
	// Propose creates a tag in pending status; it becomes usable once an
	// admin approves it.
	Propose(name string) (*model.Tag, error)
}

type tagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) ListActive() ([]model.Tag, error) {
	return s.tags.FindActive()
}

func (s *tagService) Propose(name string) (*model.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		fieldErrs := NewFieldErrors()
		fieldErrs.Add("name", "Numele etichetei este obligatoriu.")
		return nil, fieldErrs
	}

	if _, err := s.tags.FindByName(name); err == nil {
		return nil, ErrTagNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &model.Tag{Name: name, Status: model.TagPending}
	if err := s.tags.Create(tag); err != nil {
		return nil, err
	}

	logger.Info("Tag proposed", map[string]interface{}{
		"tag_id": tag.ID,
		"name":   tag.Name,
	})
	return tag, nil
}
