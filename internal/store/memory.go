package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/noah-isme/class-coins-api/internal/models"
)

// MemoryStore keeps records in process memory, preserving insertion
// order. It is selected when no database connection string is
// configured, or when the configured database cannot be opened.
type MemoryStore struct {
	mu       sync.Mutex
	classes  []models.Class
	students []models.Student
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Class, len(s.classes))
	copy(out, s.classes)
	return out, nil
}

func (s *MemoryStore) CreateClass(ctx context.Context, name string) (*models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class := models.Class{ID: uuid.NewString(), Name: name}
	s.classes = append(s.classes, class)
	return &class, nil
}

func (s *MemoryStore) DeleteClass(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, class := range s.classes {
		if class.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	// Cascade: drop the students before the class itself.
	kept := make([]models.Student, 0, len(s.students))
	for _, student := range s.students {
		if student.ClassID != id {
			kept = append(kept, student)
		}
	}
	s.students = kept
	s.classes = append(s.classes[:idx], s.classes[idx+1:]...)
	return nil
}

func (s *MemoryStore) ListStudentsByClass(ctx context.Context, classID string) ([]models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Student, 0)
	for _, student := range s.students {
		if student.ClassID == classID {
			out = append(out, student)
		}
	}
	// Stable sort keeps insertion order among equal balances.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Coins > out[j].Coins })
	return out, nil
}

func (s *MemoryStore) CreateStudent(ctx context.Context, name, classID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.classExists(classID) {
		return nil, ErrClassNotFound
	}

	student := models.Student{ID: uuid.NewString(), Name: name, Coins: 0, ClassID: classID}
	s.students = append(s.students, student)
	return &student, nil
}

func (s *MemoryStore) DeleteStudent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, student := range s.students {
		if student.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ApplyCoinsDelta(ctx context.Context, studentID string, amount int64) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == studentID {
			s.students[i].Coins += amount
			updated := s.students[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

// Ping always succeeds: the in-process store has no backend to lose.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) classExists(id string) bool {
	for _, class := range s.classes {
		if class.ID == id {
			return true
		}
	}
	return false
}
