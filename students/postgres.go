package students

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/campushub-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PostgresStore is the pgx-backed Store implementation.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const studentColumns = `id, student_id, full_name, department, session, semester, grp, shift,
	phone, blood, profile_pic, password, role, phone_privacy, profile_privacy,
	skills, is_online, last_seen, created_at`

func (ps *PostgresStore) findOne(ctx context.Context, where string, arg any) (*Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE %s`, studentColumns, where)

	var s Student
	err := ps.db.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.StudentID, &s.FullName, &s.Department, &s.Session, &s.Semester,
		&s.Group, &s.Shift, &s.Phone, &s.Blood, &s.ProfilePic, &s.PasswordHash,
		&s.Role, &s.PhonePrivacy, &s.ProfilePrivacy, &s.Skills,
		&s.IsOnline, &s.LastSeen, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("student not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to load student", err)
	}

	if err := ps.loadProjects(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (ps *PostgresStore) loadProjects(ctx context.Context, s *Student) error {
	rows, err := ps.db.Query(ctx,
		`SELECT id, title, description, link, technologies, created_at
		 FROM projects WHERE student_id = $1 ORDER BY position`, s.ID)
	if err != nil {
		return apperror.NewDatabaseError("failed to load projects", err)
	}
	defer rows.Close()

	s.Projects = []Project{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link, &p.Technologies, &p.CreatedAt); err != nil {
			return apperror.NewDatabaseError("failed to scan project", err)
		}
		s.Projects = append(s.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return apperror.NewDatabaseError("failed to read projects", err)
	}
	return nil
}

// FindByID looks up a student by the opaque account identifier.
func (ps *PostgresStore) FindByID(ctx context.Context, id string) (*Student, error) {
	return ps.findOne(ctx, "id = $1", id)
}

// FindByStudentID looks up a student by the public 6-digit identifier.
func (ps *PostgresStore) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	return ps.findOne(ctx, "student_id = $1", studentID)
}

// FindByPhone looks up a student by phone number.
func (ps *PostgresStore) FindByPhone(ctx context.Context, phone string) (*Student, error) {
	return ps.findOne(ctx, "phone = $1", phone)
}

// Create inserts a new record. Duplicate student_id or phone surfaces as a
// ConflictError via the table's unique constraints.
func (ps *PostgresStore) Create(ctx context.Context, s *Student) error {
	query := `INSERT INTO students
		(id, student_id, full_name, department, session, semester, grp, shift,
		 phone, blood, profile_pic, password, role, phone_privacy, profile_privacy,
		 skills, is_online, last_seen)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING created_at`

	err := ps.db.QueryRow(ctx, query,
		s.ID, s.StudentID, s.FullName, s.Department, s.Session, s.Semester,
		s.Group, s.Shift, s.Phone, s.Blood, s.ProfilePic, s.PasswordHash,
		s.Role, s.PhonePrivacy, s.ProfilePrivacy, s.Skills, s.IsOnline, s.LastSeen,
	).Scan(&s.CreatedAt)
	if err != nil {
		return ps.mapWriteError(err, "failed to create student")
	}
	return nil
}

// Save persists the mutable fields of an existing record and replaces the
// project list inside a transaction, so a profile update is all-or-nothing.
func (ps *PostgresStore) Save(ctx context.Context, s *Student) error {
	tx, err := ps.db.Begin(ctx)
	if err != nil {
		return apperror.NewDatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE students SET
			full_name = $2, phone = $3, blood = $4, profile_pic = $5,
			password = $6, phone_privacy = $7, profile_privacy = $8,
			skills = $9, is_online = $10, last_seen = $11, updated_at = NOW()
		WHERE id = $1`,
		s.ID, s.FullName, s.Phone, s.Blood, s.ProfilePic, s.PasswordHash,
		s.PhonePrivacy, s.ProfilePrivacy, s.Skills, s.IsOnline, s.LastSeen,
	)
	if err != nil {
		return ps.mapWriteError(err, "failed to save student")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("student not found", nil)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE student_id = $1`, s.ID); err != nil {
		return apperror.NewDatabaseError("failed to clear projects", err)
	}
	for i, p := range s.Projects {
		_, err := tx.Exec(ctx,
			`INSERT INTO projects (id, student_id, title, description, link, technologies, position, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			p.ID, s.ID, p.Title, p.Description, p.Link, p.Technologies, i, p.CreatedAt)
		if err != nil {
			return apperror.NewDatabaseError("failed to save project", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewDatabaseError("failed to commit save", err)
	}
	return nil
}

// mapWriteError translates unique constraint violations into ConflictError so
// callers see duplicate identifiers as a conflict rather than a server fault.
func (ps *PostgresStore) mapWriteError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "student_id") {
			return apperror.NewConflictError("student ID already registered", nil)
		}
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return apperror.NewConflictError("phone number already registered", nil)
		}
		return apperror.NewConflictError("duplicate record", nil)
	}
	return apperror.NewDatabaseError(message, err)
}
