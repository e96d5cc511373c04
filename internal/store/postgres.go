package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/class-coins-api/internal/models"
)

// PostgresStore is the durable backend. The pool is created once at
// startup and shared for the process lifetime; connections are
// established lazily on first use.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	const query = `SELECT id, name FROM classes ORDER BY created_at ASC`
	var classes []models.Class
	if err := s.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (s *PostgresStore) CreateClass(ctx context.Context, name string) (*models.Class, error) {
	class := models.Class{ID: uuid.NewString(), Name: name}
	const query = `INSERT INTO classes (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := s.db.ExecContext(ctx, query, class.ID, class.Name, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return &class, nil
}

func (s *PostgresStore) DeleteClass(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	// Students first, class second. The two statements are deliberately
	// not wrapped in a transaction: a crash in between can leave orphaned
	// students behind, which is the documented trade-off of this cascade.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE class_id = $1`, id); err != nil {
		return fmt.Errorf("delete class students: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListStudentsByClass(ctx context.Context, classID string) ([]models.Student, error) {
	if _, err := uuid.Parse(classID); err != nil {
		return nil, ErrInvalidID
	}

	const query = `SELECT id, name, coins, class_id FROM students WHERE class_id = $1 ORDER BY coins DESC, created_at ASC`
	var students []models.Student
	if err := s.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *PostgresStore) CreateStudent(ctx context.Context, name, classID string) (*models.Student, error) {
	if _, err := uuid.Parse(classID); err != nil {
		return nil, ErrInvalidID
	}

	var one int
	if err := s.db.GetContext(ctx, &one, `SELECT 1 FROM classes WHERE id = $1`, classID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("check class: %w", err)
	}

	student := models.Student{ID: uuid.NewString(), Name: name, Coins: 0, ClassID: classID}
	const query = `INSERT INTO students (id, name, coins, class_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.db.ExecContext(ctx, query, student.ID, student.Name, student.Coins, student.ClassID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &student, nil
}

func (s *PostgresStore) DeleteStudent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ApplyCoinsDelta(ctx context.Context, studentID string, amount int64) (*models.Student, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return nil, ErrInvalidID
	}

	// Single increment-and-fetch statement so concurrent deltas never
	// lose updates.
	const query = `UPDATE students SET coins = coins + $2 WHERE id = $1 RETURNING id, name, coins, class_id`
	var student models.Student
	if err := s.db.GetContext(ctx, &student, query, studentID, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("apply coins delta: %w", err)
	}
	return &student, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
