package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/class-coins-api/internal/models"
	"github.com/noah-isme/class-coins-api/internal/store"
	appErrors "github.com/noah-isme/class-coins-api/pkg/errors"
)

type mockClassStore struct {
	classes   []models.Class
	listErr   error
	createErr error
	deleteErr error
	deleted   []string
}

func (m *mockClassStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.classes, nil
}

func (m *mockClassStore) CreateClass(ctx context.Context, name string) (*models.Class, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	class := models.Class{ID: "generated", Name: name}
	m.classes = append(m.classes, class)
	return &class, nil
}

func (m *mockClassStore) DeleteClass(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

func TestClassServiceListDegradesToEmpty(t *testing.T) {
	repo := &mockClassStore{listErr: errors.New("connection refused")}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	classes, err := svc.List(context.Background())
	require.NoError(t, err, "listing must not surface backend failures")
	assert.NotNil(t, classes)
	assert.Empty(t, classes)
}

func TestClassServiceListReturnsEmptySliceNotNil(t *testing.T) {
	repo := &mockClassStore{}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	classes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, classes)
}

func TestClassServiceCreateTrimsAndValidates(t *testing.T) {
	repo := &mockClassStore{}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	class, err := svc.Create(context.Background(), CreateClassRequest{Name: "  5A  "})
	require.NoError(t, err)
	assert.Equal(t, "5A", class.Name)

	_, err = svc.Create(context.Background(), CreateClassRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestClassServiceCreateFailureCarriesDetails(t *testing.T) {
	repo := &mockClassStore{createErr: errors.New("disk full")}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateClassRequest{Name: "5A"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "disk full", appErr.Details)
}

func TestClassServiceDeleteMapsNotFound(t *testing.T) {
	repo := &mockClassStore{deleteErr: store.ErrNotFound}
	svc := NewClassService(repo, nil, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
	assert.Contains(t, repo.deleted, "missing")

	repo.deleteErr = store.ErrInvalidID
	err = svc.Delete(context.Background(), "garbage")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}
