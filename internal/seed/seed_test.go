package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/repositories/memory"
)

func TestCreateDefaultCourses_Idempotent(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())
	ctx := context.Background()

	first, err := CreateDefaultCourses(ctx, repos.Courses, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Result{Created: len(DefaultCourses)}, first)

	second, err := CreateDefaultCourses(ctx, repos.Courses, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Result{Existing: len(DefaultCourses)}, second)

	courses, err := repos.Courses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 8)
	assert.Equal(t, "CHEM 102", courses[0].CourseID)

	eng, err := repos.Courses.GetByCourseID(ctx, "ENG 100")
	require.NoError(t, err)
	assert.Equal(t, 1, eng.Credits)
}

type failingCourses struct {
	repositories.CourseStore
}

func (failingCourses) GetOrCreate(context.Context, *models.Course) (*models.Course, bool, error) {
	return nil, false, errors.New("connection refused")
}

func TestCreateDefaultCourses_CollectsErrors(t *testing.T) {
	result, err := CreateDefaultCourses(context.Background(), failingCourses{}, zerolog.Nop())
	assert.Error(t, err)
	assert.Equal(t, Result{}, result)
}

const gpaCSV = `Year,Term,Subject,Number,Course Title,Students,A+,A
2023,Fall,CS,225,Data Structures,400,10,20
2023,Fall,CS,225,Data Structures,380,12,18
2023,Fall,STAT,400,Statistics and Probability I,200,5,9
2023,Fall,MATH,,Missing Number,10,1,1
2023,Fall,,241,Missing Subject,10,1,1
2023,Fall,PHYS,211,,10,1,1
`

func TestImportGPA(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())
	ctx := context.Background()

	result, err := ImportGPA(ctx, repos.Courses, strings.NewReader(gpaCSV), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 2, Existing: 1, Skipped: 3}, result)

	cs, err := repos.Courses.GetByCourseID(ctx, "CS 225")
	require.NoError(t, err)
	assert.Equal(t, 4, cs.Credits)
	assert.Equal(t, "CS", cs.Dept)

	stat, err := repos.Courses.GetByCourseID(ctx, "STAT 400")
	require.NoError(t, err)
	assert.Equal(t, 3, stat.Credits)
	assert.Equal(t, "Statistics and Probability I", stat.Title)
}

func TestImportGPA_RefreshesTitle(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())
	ctx := context.Background()

	_, _, err := repos.Courses.GetOrCreate(ctx, &models.Course{CourseID: "CS 374", Dept: "CS", Title: "Algorithms", Credits: 4})
	require.NoError(t, err)

	csv := "Subject,Number,Course Title\nCS,374,Intro to Algs & Models of Comp\n"
	result, err := ImportGPA(ctx, repos.Courses, strings.NewReader(csv), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Result{Updated: 1}, result)

	course, err := repos.Courses.GetByCourseID(ctx, "CS 374")
	require.NoError(t, err)
	assert.Equal(t, "Intro to Algs & Models of Comp", course.Title)
	assert.Equal(t, 4, course.Credits)
}

func TestImportGPA_KeepsUnusualCodes(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())
	ctx := context.Background()

	csv := `Subject,Number,Course Title
CS,225,Data Structures
cs,101,Intro Computing
STAT,4000,Advanced Statistics
MACS,1XX,Media Elective
`
	result, err := ImportGPA(ctx, repos.Courses, strings.NewReader(csv), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 4}, result)

	for _, code := range []string{"CS 225", "cs 101", "STAT 4000", "MACS 1XX"} {
		_, err := repos.Courses.GetByCourseID(ctx, code)
		assert.NoError(t, err, code)
	}

	lower, err := repos.Courses.GetByCourseID(ctx, "cs 101")
	require.NoError(t, err)
	assert.Equal(t, 3, lower.Credits)
}

func TestImportGPA_MissingColumn(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())

	_, err := ImportGPA(context.Background(), repos.Courses, strings.NewReader("Subject,Number\nCS,225\n"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestImportGPA_EmptyInput(t *testing.T) {
	repos := memory.NewRepositories(memory.NewDB())

	_, err := ImportGPA(context.Background(), repos.Courses, strings.NewReader(""), zerolog.Nop())
	assert.Error(t, err)
}
