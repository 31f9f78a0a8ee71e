package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/metrics"
)

// Shared repository errors. Stores return these so callers never inspect driver errors.
var (
	ErrNotFound               = errors.New("record not found")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrProfileExists          = errors.New("profile already exists for user")
	ErrBookmarkExists         = errors.New("course already bookmarked by user")
	ErrCourseReferenceMissing = errors.New("referenced course does not exist")
)

// Constraint names declared in the migrations.
const (
	constraintUsernameUnique   = "users_username_key"
	constraintProfileUser      = "profiles_user_id_key"
	constraintBookmarkUnique   = "bookmarks_user_course_key"
	constraintBookmarkCourseFK = "bookmarks_course_id_fkey"
)

// DBTX is the subset of pgx used by the repositories.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserStore persists accounts for the auth endpoints.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// CourseStore reads the catalog. Write methods exist for seed and import tooling only.
type CourseStore interface {
	List(ctx context.Context) ([]*models.Course, error)
	ListFirst(ctx context.Context, limit int) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	GetOrCreate(ctx context.Context, course *models.Course) (*models.Course, bool, error)
	Update(ctx context.Context, course *models.Course) error
}

// ProfileStore accesses profiles. Every method is scoped by the owning user id.
type ProfileStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	GetOrCreateByUserID(ctx context.Context, userID int64) (*models.Profile, bool, error)
	UpdateByUserID(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID int64) (bool, error)
}

// BookmarkStore accesses bookmarks. Every method is scoped by the owning user id.
type BookmarkStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	Create(ctx context.Context, bookmark *models.Bookmark) error
	GetForUser(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	UpdateCourseForUser(ctx context.Context, id, userID, courseID int64) (*models.Bookmark, error)
	DeleteForUser(ctx context.Context, id, userID int64) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Users     UserStore
	Courses   CourseStore
	Profiles  ProfileStore
	Bookmarks BookmarkStore
}

// NewRepositories initializes the PostgreSQL-backed repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Courses:   NewCourseRepository(db),
		Profiles:  NewProfileRepository(db),
		Bookmarks: NewBookmarkRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// observe records a query outcome; call it deferred with a pointer to the named error.
func observe(table, operation string, start time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	if errors.Is(e, ErrNotFound) {
		e = nil
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), e)
}
