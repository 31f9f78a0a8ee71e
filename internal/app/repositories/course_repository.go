package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var courseColumns = []string{"id", "course_id", "dept", "title", "credits"}

// catalogOrder is the canonical ordering for every course listing.
var catalogOrder = []string{"dept ASC", "course_id ASC"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	if err := row.Scan(&course.ID, &course.CourseID, &course.Dept, &course.Title, &course.Credits); err != nil {
		return nil, err
	}
	return course, nil
}

// List returns the whole catalog ordered by department then course code
func (r *CourseRepository) List(ctx context.Context) (courses []*models.Course, err error) {
	defer observe("courses", "list", time.Now(), &err)

	query := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy(catalogOrder...)

	return r.queryCourses(ctx, query)
}

// ListFirst returns the first limit courses in catalog order
func (r *CourseRepository) ListFirst(ctx context.Context, limit int) (courses []*models.Course, err error) {
	defer observe("courses", "list_first", time.Now(), &err)

	if limit <= 0 {
		return []*models.Course{}, nil
	}

	query := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy(catalogOrder...).
		Limit(uint64(limit))

	return r.queryCourses(ctx, query)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by its surrogate id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (course *models.Course, err error) {
	defer observe("courses", "get", time.Now(), &err)
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCourseID retrieves a course by its human-readable code
func (r *CourseRepository) GetByCourseID(ctx context.Context, courseID string) (course *models.Course, err error) {
	defer observe("courses", "get_by_code", time.Now(), &err)
	return r.getOne(ctx, squirrel.Eq{"course_id": courseID})
}

func (r *CourseRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// GetOrCreate inserts the course unless its code already exists, returning the stored row
// and whether it was created.
func (r *CourseRepository) GetOrCreate(ctx context.Context, course *models.Course) (stored *models.Course, created bool, err error) {
	defer observe("courses", "get_or_create", time.Now(), &err)

	credits := course.Credits
	if credits == 0 {
		credits = models.DefaultCredits
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "dept", "title", "credits").
		Values(course.CourseID, course.Dept, course.Title, credits).
		Suffix("ON CONFLICT (course_id) DO NOTHING RETURNING id, course_id, dept, title, credits").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build create course query: %w", err)
	}

	stored, err = scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("courseID", course.CourseID).Msg("Error creating course")
		return nil, false, fmt.Errorf("error creating course: %w", err)
	}

	// Conflict: the code already exists.
	stored, err = r.getOne(ctx, squirrel.Eq{"course_id": course.CourseID})
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}

// Update rewrites the mutable columns of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (err error) {
	defer observe("courses", "update", time.Now(), &err)

	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"dept":    course.Dept,
			"title":   course.Title,
			"credits": course.Credits,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
