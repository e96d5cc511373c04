package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/export"
	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/store"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
)

type studentStore interface {
	ListStudentsByClass(ctx context.Context, classID string) ([]models.Student, error)
	CreateStudent(ctx context.Context, name, classID string) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	ApplyCoinsDelta(ctx context.Context, studentID string, amount int64) (*models.Student, error)
}

// CreateStudentRequest holds the payload for registering a student.
type CreateStudentRequest struct {
	Name    string `json:"name" validate:"required"`
	ClassID string `json:"classId" validate:"required"`
}

// StudentService handles student use-cases over the storage port.
type StudentService struct {
	store     studentStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st studentStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, cache: cache, validator: validate, logger: logger}
}

// ListByClass returns the students of a class ordered by coin balance.
// An invalid id is a validation failure; any other backend failure
// degrades to an empty list, mirroring the class listing policy.
func (s *StudentService) ListByClass(ctx context.Context, classID string) ([]models.Student, error) {
	cacheKey := "students:class:" + classID
	var cached []models.Student
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	students, err := s.store.ListStudentsByClass(ctx, classID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid class id")
		}
		s.logger.Warn("failed to list students, serving empty result", zap.Error(err))
		return []models.Student{}, nil
	}
	if students == nil {
		students = []models.Student{}
	}
	s.cache.Set(ctx, cacheKey, students)
	return students, nil
}

// Create registers a student in an existing class with a zero balance.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name and classId are required")
	}

	student, err := s.store.CreateStudent(ctx, req.Name, req.ClassID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrClassNotFound):
			return nil, appErrors.Clone(appErrors.ErrValidation, "class does not exist")
		case errors.Is(err, store.ErrInvalidID):
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid class id")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	s.cache.Invalidate(ctx, "students:class:"+req.ClassID)
	return student, nil
}

// ExportByClass renders the class standings as a CSV document, students
// ordered by coin balance like the JSON listing.
func (s *StudentService) ExportByClass(ctx context.Context, classID string) ([]byte, error) {
	students, err := s.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	out, err := export.RenderStandings(students)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export standings")
	}
	return out, nil
}

// Delete removes a single student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}

	s.cache.Invalidate(ctx, studentListCachePattern)
	return nil
}

// ApplyCoinsDelta adjusts a student's balance by the signed amount and
// returns the updated record.
func (s *StudentService) ApplyCoinsDelta(ctx context.Context, id string, amount int64) (*models.Student, error) {
	student, err := s.store.ApplyCoinsDelta(ctx, id, amount)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update coins")
	}

	s.cache.Invalidate(ctx, "students:class:"+student.ClassID)
	return student, nil
}
