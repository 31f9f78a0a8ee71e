// Package memory implements the repository interfaces on process memory.
// It enforces the same uniqueness and reference rules as the PostgreSQL schema
// and backs the "memory" database driver used in development and tests.
package memory

import (
	"sync"
	"time"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// DB is the shared state behind every memory store. All stores of one DB see the same rows.
type DB struct {
	mu sync.RWMutex

	users     map[int64]*models.User
	courses   map[int64]*models.Course
	profiles  map[int64]*models.Profile
	bookmarks map[int64]*models.Bookmark

	seq map[string]int64

	// now stamps bookmark creation. Replaced in tests for deterministic ordering.
	now func() time.Time
}

// NewDB creates an empty in-memory database
func NewDB() *DB {
	return &DB{
		users:     make(map[int64]*models.User),
		courses:   make(map[int64]*models.Course),
		profiles:  make(map[int64]*models.Profile),
		bookmarks: make(map[int64]*models.Bookmark),
		seq:       make(map[string]int64),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the timestamp source
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// nextID must be called with mu held for writing.
func (db *DB) nextID(table string) int64 {
	db.seq[table]++
	return db.seq[table]
}

// NewRepositories wires the memory stores of db into a repository set
func NewRepositories(db *DB) *repositories.Repositories {
	return &repositories.Repositories{
		Users:     &UserStore{db: db},
		Courses:   &CourseStore{db: db},
		Profiles:  &ProfileStore{db: db},
		Bookmarks: &BookmarkStore{db: db},
	}
}
