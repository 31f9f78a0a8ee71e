package memory

import (
	"context"
	"sort"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// UserStore keeps accounts in memory
type UserStore struct {
	db *DB
}

// Create stores a new user, rejecting a taken username
func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Username == user.Username {
			return repositories.ErrUsernameTaken
		}
	}

	user.ID = s.db.nextID("users")
	user.CreatedAt = s.db.now()
	stored := *user
	s.db.users[user.ID] = &stored
	return nil
}

// GetByID retrieves a user by ID
func (s *UserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *u
	return &out, nil
}

// GetByUsername retrieves a user by username
func (s *UserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// CourseStore keeps the catalog in memory
type CourseStore struct {
	db *DB
}

func (s *CourseStore) sorted() []*models.Course {
	courses := make([]*models.Course, 0, len(s.db.courses))
	for _, c := range s.db.courses {
		out := *c
		courses = append(courses, &out)
	}
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].Dept != courses[j].Dept {
			return courses[i].Dept < courses[j].Dept
		}
		return courses[i].CourseID < courses[j].CourseID
	})
	return courses
}

// List returns the whole catalog ordered by department then course code
func (s *CourseStore) List(_ context.Context) ([]*models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.sorted(), nil
}

// ListFirst returns the first limit courses in catalog order
func (s *CourseStore) ListFirst(_ context.Context, limit int) ([]*models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if limit <= 0 {
		return []*models.Course{}, nil
	}
	courses := s.sorted()
	if len(courses) > limit {
		courses = courses[:limit]
	}
	return courses, nil
}

// GetByID retrieves a course by its surrogate id
func (s *CourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	c, ok := s.db.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *c
	return &out, nil
}

// GetByCourseID retrieves a course by its human-readable code
func (s *CourseStore) GetByCourseID(_ context.Context, courseID string) (*models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if c := s.findByCode(courseID); c != nil {
		out := *c
		return &out, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *CourseStore) findByCode(courseID string) *models.Course {
	for _, c := range s.db.courses {
		if c.CourseID == courseID {
			return c
		}
	}
	return nil
}

// GetOrCreate inserts the course unless its code already exists, returning the stored row
// and whether it was created.
func (s *CourseStore) GetOrCreate(_ context.Context, course *models.Course) (*models.Course, bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if existing := s.findByCode(course.CourseID); existing != nil {
		out := *existing
		return &out, false, nil
	}

	stored := *course
	stored.ID = s.db.nextID("courses")
	if stored.Credits == 0 {
		stored.Credits = models.DefaultCredits
	}
	s.db.courses[stored.ID] = &stored

	out := stored
	return &out, true, nil
}

// Update rewrites the mutable fields of a course
func (s *CourseStore) Update(_ context.Context, course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.courses[course.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.Dept = course.Dept
	c.Title = course.Title
	c.Credits = course.Credits
	return nil
}

// ProfileStore keeps profiles in memory, at most one per user
type ProfileStore struct {
	db *DB
}

func (s *ProfileStore) findByUser(userID int64) *models.Profile {
	for _, p := range s.db.profiles {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// ListByUserID returns the user's profile as a list of zero or one
func (s *ProfileStore) ListByUserID(_ context.Context, userID int64) ([]*models.Profile, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	profiles := []*models.Profile{}
	if p := s.findByUser(userID); p != nil {
		out := *p
		profiles = append(profiles, &out)
	}
	return profiles, nil
}

// Create stores a profile, rejecting a second one for the same user
func (s *ProfileStore) Create(_ context.Context, profile *models.Profile) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.findByUser(profile.UserID) != nil {
		return repositories.ErrProfileExists
	}
	profile.ID = s.db.nextID("profiles")
	stored := *profile
	s.db.profiles[stored.ID] = &stored
	return nil
}

// GetByUserID retrieves the user's profile
func (s *ProfileStore) GetByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p := s.findByUser(userID)
	if p == nil {
		return nil, repositories.ErrNotFound
	}
	out := *p
	return &out, nil
}

// GetOrCreateByUserID returns the user's profile, creating an empty one on first access
func (s *ProfileStore) GetOrCreateByUserID(_ context.Context, userID int64) (*models.Profile, bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if p := s.findByUser(userID); p != nil {
		out := *p
		return &out, false, nil
	}

	stored := &models.Profile{ID: s.db.nextID("profiles"), UserID: userID}
	s.db.profiles[stored.ID] = stored
	out := *stored
	return &out, true, nil
}

// UpdateByUserID rewrites the user's profile fields
func (s *ProfileStore) UpdateByUserID(_ context.Context, profile *models.Profile) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p := s.findByUser(profile.UserID)
	if p == nil {
		return repositories.ErrNotFound
	}
	p.Major = profile.Major
	p.Year = profile.Year
	profile.ID = p.ID
	return nil
}

// DeleteByUserID removes the user's profile and reports whether one existed
func (s *ProfileStore) DeleteByUserID(_ context.Context, userID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p := s.findByUser(userID)
	if p == nil {
		return false, nil
	}
	delete(s.db.profiles, p.ID)
	return true, nil
}

// BookmarkStore keeps bookmarks in memory, unique per (user, course)
type BookmarkStore struct {
	db *DB
}

// checkWrite must be called with mu held. skipID excludes the row being updated.
func (s *BookmarkStore) checkWrite(userID, courseID, skipID int64) error {
	if _, ok := s.db.courses[courseID]; !ok {
		return repositories.ErrCourseReferenceMissing
	}
	for _, b := range s.db.bookmarks {
		if b.ID != skipID && b.UserID == userID && b.CourseID == courseID {
			return repositories.ErrBookmarkExists
		}
	}
	return nil
}

// ListByUserID returns the user's bookmarks, most recent first
func (s *BookmarkStore) ListByUserID(_ context.Context, userID int64) ([]*models.Bookmark, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	bookmarks := []*models.Bookmark{}
	for _, b := range s.db.bookmarks {
		if b.UserID == userID {
			out := *b
			bookmarks = append(bookmarks, &out)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool {
		if !bookmarks[i].CreatedAt.Equal(bookmarks[j].CreatedAt) {
			return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
		}
		return bookmarks[i].ID > bookmarks[j].ID
	})
	return bookmarks, nil
}

// Create stores a bookmark, enforcing the course reference and per-user uniqueness
func (s *BookmarkStore) Create(_ context.Context, bookmark *models.Bookmark) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkWrite(bookmark.UserID, bookmark.CourseID, 0); err != nil {
		return err
	}

	bookmark.ID = s.db.nextID("bookmarks")
	bookmark.CreatedAt = s.db.now()
	stored := *bookmark
	s.db.bookmarks[stored.ID] = &stored
	return nil
}

// GetForUser retrieves a bookmark owned by the user
func (s *BookmarkStore) GetForUser(_ context.Context, id, userID int64) (*models.Bookmark, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	b, ok := s.db.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := *b
	return &out, nil
}

// UpdateCourseForUser points the user's bookmark at another course
func (s *BookmarkStore) UpdateCourseForUser(_ context.Context, id, userID, courseID int64) (*models.Bookmark, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	b, ok := s.db.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	if err := s.checkWrite(userID, courseID, id); err != nil {
		return nil, err
	}

	b.CourseID = courseID
	out := *b
	return &out, nil
}

// DeleteForUser removes a bookmark owned by the user
func (s *BookmarkStore) DeleteForUser(_ context.Context, id, userID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	b, ok := s.db.bookmarks[id]
	if !ok || b.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(s.db.bookmarks, id)
	return nil
}

var (
	_ repositories.UserStore     = (*UserStore)(nil)
	_ repositories.CourseStore   = (*CourseStore)(nil)
	_ repositories.ProfileStore  = (*ProfileStore)(nil)
	_ repositories.BookmarkStore = (*BookmarkStore)(nil)
)
