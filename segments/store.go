package segments

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// Statement types.
const (
	StatementAdd uint8 = iota
	StatementSet
	statementUnknown
)

var (
	// ErrUnknownStatement is returned when a statement has an unsupported type.
	ErrUnknownStatement = errors.New("unknown statement type")
	// ErrKeyNotFound is returned when a statement targets a missing key and
	// CreateIfNotExists is false.
	ErrKeyNotFound = errors.New("key does not exist")
)

// A Statement represents an update to perform on a store.
type Statement[T Number] struct {
	Key               string
	Type              uint8
	From              int64
	To                int64
	Amount            T
	CreateIfNotExists bool
}

// A Store represents a collection of named Segments. A Store can be used
// simultaneously from multiple goroutines.
type Store[T Number] struct {
	m  map[string]*Segments[T]
	mu sync.RWMutex
}

// NewStore creates and initializes a new Store.
func NewStore[T Number]() *Store[T] {
	return &Store[T]{m: make(map[string]*Segments[T])}
}

// New adds an empty Segments to the store using key as its identifier. If
// Segments already exist for the identifier they are silently replaced.
func (s *Store[T]) New(key string) {
	s.mu.Lock()
	s.m[key] = &Segments[T]{}
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier. If Segments
// already exist for the identifier they are silently replaced.
func (s *Store[T]) Add(key string, x *Segments[T]) {
	s.mu.Lock()
	s.m[key] = x.clone()
	s.mu.Unlock()
}

// Get returns a copy of the Segments associated to key. The second return value
// is true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Segments[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.clone(), true
}

// Delete removes the Segments associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Keys returns the identifiers known in the store, sorted.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed.
func (s *Store[T]) Execute(statement Statement[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store under a single lock.
// Individual errors are non blocking but if one or more statements could not be
// executed the method returns a global error along with a report holding one
// line per failed statement.
func (s *Store[T]) Batch(statements []Statement[T]) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			report = append(report, errors.Wrapf(err, "at index %d", i).Error())
		}
	}
	if len(report) > 0 {
		return report, errors.Errorf("%d of %d statements could not be completed", len(report), len(statements))
	}
	return nil, nil
}

// executeUnsafe executes a statement against the store. This method is not
// goroutine-safe. The caller is responsible for properly acquiring / releasing
// the lock on the store.
func (s *Store[T]) executeUnsafe(statement Statement[T]) error {
	if statement.Type >= statementUnknown {
		return errors.Wrapf(ErrUnknownStatement, "type %d", statement.Type)
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return errors.Wrapf(ErrKeyNotFound, "key %q", statement.Key)
		}
		x = &Segments[T]{}
		s.m[statement.Key] = x
	}
	switch statement.Type {
	case StatementAdd:
		x.Add(statement.From, statement.To, statement.Amount)
	case StatementSet:
		x.Set(statement.From, statement.To, statement.Amount)
	}
	return nil
}
