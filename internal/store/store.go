package store

import (
	"context"
	"errors"

	"github.com/noah-isme/class-coins-api/internal/models"
)

// Sentinel errors shared by both backends. Services translate them into
// HTTP-aware errors; raw driver errors never cross this boundary as ids.
var (
	ErrNotFound      = errors.New("record not found")
	ErrClassNotFound = errors.New("class not found")
	ErrInvalidID     = errors.New("invalid id")
)

// Store is the persistence port for classes and students. The backend is
// chosen once at startup; callers depend only on this interface and
// observe identical semantics from either implementation. Returned
// records are copies, never live references into the store.
type Store interface {
	// ListClasses returns all classes in a stable order.
	ListClasses(ctx context.Context) ([]models.Class, error)
	// CreateClass stores a class under a fresh id. The name is assumed
	// validated (non-empty, trimmed) by the caller.
	CreateClass(ctx context.Context, name string) (*models.Class, error)
	// DeleteClass removes a class and every student referencing it. The
	// students go first so no caller can observe an orphan once the
	// operation completes.
	DeleteClass(ctx context.Context, id string) error
	// ListStudentsByClass returns the students of a class sorted by coin
	// balance descending with stable ties.
	ListStudentsByClass(ctx context.Context, classID string) ([]models.Student, error)
	// CreateStudent stores a student with a zero balance; the class must
	// exist or ErrClassNotFound is returned.
	CreateStudent(ctx context.Context, name, classID string) (*models.Student, error)
	// DeleteStudent removes a single student.
	DeleteStudent(ctx context.Context, id string) error
	// ApplyCoinsDelta atomically increments the balance and returns the
	// updated student.
	ApplyCoinsDelta(ctx context.Context, studentID string, amount int64) (*models.Student, error)
	// Ping reports backend reachability for the health endpoint.
	Ping(ctx context.Context) error
}
