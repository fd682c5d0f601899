package students

import "context"

// Store is the credential store contract. Create must reject duplicate
// student IDs and phone numbers atomically; the Postgres implementation
// delegates that to UNIQUE constraints so concurrent creates cannot both
// succeed. Lookups return a NotFoundError when no record matches; other
// failures surface as DatabaseError.
type Store interface {
	FindByID(ctx context.Context, id string) (*Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*Student, error)
	FindByPhone(ctx context.Context, phone string) (*Student, error)
	Create(ctx context.Context, s *Student) error
	// Save persists the mutable fields of an existing record, including
	// privacy flags, skills and projects.
	Save(ctx context.Context, s *Student) error
}
