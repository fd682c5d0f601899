package students

import (
	"context"
	"sync"

	"github.com/user/campushub-go/apperror"
)

// MockStore is an in-memory Store implementation for tests. It enforces the
// same uniqueness rules as the Postgres schema so service tests exercise real
// conflict behavior.
type MockStore struct {
	mu       sync.Mutex
	byID     map[string]*Student
	failWith error // when set, every call fails with this error
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{byID: make(map[string]*Student)}
}

// FailWith makes every subsequent store call return err. Pass nil to clear.
func (m *MockStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// clone guards callers against mutating stored state through returned
// pointers; the real store returns freshly scanned rows.
func clone(s *Student) *Student {
	cp := *s
	cp.Skills = append(make([]string, 0, len(s.Skills)), s.Skills...)
	cp.Projects = append(make([]Project, 0, len(s.Projects)), s.Projects...)
	return &cp
}

// FindByID implements Store.
func (m *MockStore) FindByID(ctx context.Context, id string) (*Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if s, ok := m.byID[id]; ok {
		return clone(s), nil
	}
	return nil, apperror.NewNotFoundError("student not found", nil)
}

// FindByStudentID implements Store.
func (m *MockStore) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, s := range m.byID {
		if s.StudentID == studentID {
			return clone(s), nil
		}
	}
	return nil, apperror.NewNotFoundError("student not found", nil)
}

// FindByPhone implements Store.
func (m *MockStore) FindByPhone(ctx context.Context, phone string) (*Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, s := range m.byID {
		if s.Phone == phone {
			return clone(s), nil
		}
	}
	return nil, apperror.NewNotFoundError("student not found", nil)
}

// Create implements Store. The uniqueness check and the insert happen under
// one lock, matching the atomicity the real schema provides.
func (m *MockStore) Create(ctx context.Context, s *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.byID {
		if existing.StudentID == s.StudentID {
			return apperror.NewConflictError("student ID already registered", nil)
		}
		if existing.Phone == s.Phone {
			return apperror.NewConflictError("phone number already registered", nil)
		}
	}
	m.byID[s.ID] = clone(s)
	return nil
}

// Save implements Store.
func (m *MockStore) Save(ctx context.Context, s *Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.byID[s.ID]; !ok {
		return apperror.NewNotFoundError("student not found", nil)
	}
	for _, existing := range m.byID {
		if existing.ID == s.ID {
			continue
		}
		if existing.Phone == s.Phone {
			return apperror.NewConflictError("phone number already registered", nil)
		}
	}
	m.byID[s.ID] = clone(s)
	return nil
}
