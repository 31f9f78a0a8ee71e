// Package seed loads catalog data: the default course list and GPA dataset exports.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// DefaultCourses is the starter catalog
var DefaultCourses = []models.Course{
	{CourseID: "CS 225", Dept: "CS", Title: "Data Structures", Credits: 4},
	{CourseID: "CS 374", Dept: "CS", Title: "Algorithms & Models of Computation", Credits: 4},
	{CourseID: "CS 241", Dept: "CS", Title: "System Programming", Credits: 4},
	{CourseID: "MATH 241", Dept: "MATH", Title: "Calculus III", Credits: 4},
	{CourseID: "PHYS 211", Dept: "PHYS", Title: "University Physics: Mechanics", Credits: 4},
	{CourseID: "CHEM 102", Dept: "CHEM", Title: "General Chemistry I", Credits: 3},
	{CourseID: "ENG 100", Dept: "ENG", Title: "Introduction to Engineering", Credits: 1},
	{CourseID: "CS 126", Dept: "CS", Title: "Software Design Studio", Credits: 3},
}

// GPA dataset columns
const (
	columnSubject = "Subject"
	columnNumber  = "Number"
	columnTitle   = "Course Title"
)

// ErrMissingColumn is returned when the CSV header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

// Result counts what a seed run did
type Result struct {
	Created  int
	Existing int
	Updated  int
	Skipped  int
}

// CreateDefaultCourses inserts DefaultCourses, leaving existing rows untouched.
// Individual failures are collected and the remaining courses are still attempted.
func CreateDefaultCourses(ctx context.Context, courses repositories.CourseStore, lgr zerolog.Logger) (Result, error) {
	var result Result
	var finalErr error

	for i := range DefaultCourses {
		want := DefaultCourses[i]
		course, created, err := courses.GetOrCreate(ctx, &want)
		if err != nil {
			lgr.Error().Err(err).Str("courseID", want.CourseID).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if created {
			result.Created++
			lgr.Info().Str("courseID", course.CourseID).Str("title", course.Title).Msg("Created course")
		} else {
			result.Existing++
			lgr.Info().Str("courseID", course.CourseID).Str("title", course.Title).Msg("Course already exists")
		}
	}

	lgr.Info().Int("created", result.Created).Int("existing", result.Existing).Msg("Default courses seeded")
	return result, finalErr
}

// ImportGPA reads a GPA dataset CSV and creates or refreshes one course per Subject/Number pair.
// Rows missing any of the three columns are skipped. New courses get 4 credits in CS and 3 elsewhere.
func ImportGPA(ctx context.Context, courses repositories.CourseStore, r io.Reader, lgr zerolog.Logger) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("error reading CSV header: %w", err)
	}

	index, err := columnIndex(header, columnSubject, columnNumber, columnTitle)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, fmt.Errorf("error reading CSV line %d: %w", line, err)
		}

		subject := field(record, index[columnSubject])
		number := field(record, index[columnNumber])
		title := field(record, index[columnTitle])
		if subject == "" || number == "" || title == "" {
			result.Skipped++
			continue
		}

		if err := importRow(ctx, courses, subject, number, title, &result); err != nil {
			return result, fmt.Errorf("error importing CSV line %d: %w", line, err)
		}
	}

	lgr.Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("GPA dataset imported")
	return result, nil
}

func importRow(ctx context.Context, courses repositories.CourseStore, subject, number, title string, result *Result) error {
	credits := 3
	if subject == "CS" {
		credits = 4
	}

	course, created, err := courses.GetOrCreate(ctx, &models.Course{
		CourseID: subject + " " + number,
		Dept:     subject,
		Title:    title,
		Credits:  credits,
	})
	if err != nil {
		return err
	}
	if created {
		result.Created++
		return nil
	}

	if course.Title == title && course.Dept == subject {
		result.Existing++
		return nil
	}

	course.Title = title
	course.Dept = subject
	if err := courses.Update(ctx, course); err != nil {
		return err
	}
	result.Updated++
	return nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, h := range header {
		index[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	for _, name := range names {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	return index, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
