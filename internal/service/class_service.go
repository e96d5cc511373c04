package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/store"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
)

const (
	classListCacheKey       = "classes:list"
	studentListCachePattern = "students:*"
)

type classStore interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, name string) (*models.Class, error)
	DeleteClass(ctx context.Context, id string) error
}

// CreateClassRequest holds the payload for creating a class.
type CreateClassRequest struct {
	Name string `json:"name" validate:"required"`
}

// ClassService handles class use-cases over the storage port.
type ClassService struct {
	store     classStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs the class service.
func NewClassService(st classStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{store: st, cache: cache, validator: validate, logger: logger}
}

// List returns all classes. A backend failure degrades to an empty list
// so the front end always receives a renderable payload.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	var cached []models.Class
	if s.cache.Get(ctx, classListCacheKey, &cached) {
		return cached, nil
	}

	classes, err := s.store.ListClasses(ctx)
	if err != nil {
		s.logger.Warn("failed to list classes, serving empty result", zap.Error(err))
		return []models.Class{}, nil
	}
	if classes == nil {
		classes = []models.Class{}
	}
	s.cache.Set(ctx, classListCacheKey, classes)
	return classes, nil
}

// Create validates and stores a new class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class name is required")
	}

	class, err := s.store.CreateClass(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class").
			WithDetails(err.Error())
	}

	s.cache.Invalidate(ctx, classListCacheKey)
	return class, nil
}

// Delete removes a class, cascading to its students.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteClass(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}

	s.cache.Invalidate(ctx, classListCacheKey, studentListCachePattern)
	return nil
}
