package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/repositories/memory"
	"github.com/yigit/coursehub/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	t       *testing.T
	db      *memory.DB
	repos   *repositories.Repositories
	deps    *Dependencies
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.CORSAllowedOrigins = "*"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "coursehub.test"
	cfg.Recommendations.DefaultLimit = 5
	cfg.Recommendations.MaxLimit = 100

	db := memory.NewDB()
	repos := memory.NewRepositories(db)

	deps, err := BuildDependencies(cfg, repos, zerolog.Nop())
	require.NoError(t, err)

	return &testAPI{
		t:       t,
		db:      db,
		repos:   repos,
		deps:    deps,
		handler: Handler(cfg, SetupRouter(cfg, deps, zerolog.Nop())),
	}
}

func (a *testAPI) course(code, dept string) *models.Course {
	a.t.Helper()
	c, _, err := a.repos.Courses.GetOrCreate(context.Background(), &models.Course{CourseID: code, Dept: dept, Title: code, Credits: 4})
	require.NoError(a.t, err)
	return c
}

// user creates an account directly and returns a bearer token for it.
func (a *testAPI) user(username string) (*models.User, string) {
	a.t.Helper()
	u := &models.User{Username: username, Password: "unused"}
	require.NoError(a.t, a.repos.Users.Create(context.Background(), u))

	token, _, err := a.deps.JWTService.GenerateAccessToken(u)
	require.NoError(a.t, err)
	return u, token
}

func (a *testAPI) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/health/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedEndpoints_RequireAuthentication(t *testing.T) {
	api := newTestAPI(t)

	requests := []struct{ method, path string }{
		{http.MethodGet, "/api/profiles/"},
		{http.MethodPost, "/api/profiles/"},
		{http.MethodGet, "/api/profiles/1/"},
		{http.MethodPut, "/api/profiles/1/"},
		{http.MethodPatch, "/api/profiles/1/"},
		{http.MethodDelete, "/api/profiles/1/"},
		{http.MethodGet, "/api/bookmarks/"},
		{http.MethodPost, "/api/bookmarks/"},
		{http.MethodGet, "/api/bookmarks/1/"},
		{http.MethodPut, "/api/bookmarks/1/"},
		{http.MethodDelete, "/api/bookmarks/1/"},
		{http.MethodGet, "/api/recommendations/"},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w := api.do(r.method, r.path, "", nil)
			require.Equal(t, http.StatusForbidden, w.Code)
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
		})
	}

	w := api.do(http.MethodGet, "/api/bookmarks/", "not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCourses_ListSortedWithoutAuth(t *testing.T) {
	api := newTestAPI(t)
	api.course("MATH 241", "MATH")
	api.course("CS 374", "CS")
	api.course("CS 225", "CS")
	api.course("CHEM 102", "CHEM")

	w := api.do(http.MethodGet, "/api/courses/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	courses := decode[[]dto.CourseResponse](t, w)
	var codes []string
	for _, c := range courses {
		codes = append(codes, c.CourseID)
	}
	assert.Equal(t, []string{"CHEM 102", "CS 225", "CS 374", "MATH 241"}, codes)
}

func TestCourses_Get(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")

	w := api.do(http.MethodGet, fmt.Sprintf("/api/courses/%d/", cs225.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"id":%d,"course_id":"CS 225","dept":"CS","title":"CS 225","credits":4}`, cs225.ID),
		w.Body.String())

	for _, path := range []string{"/api/courses/999/", "/api/courses/abc/", "/api/courses/0/"} {
		w = api.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestCourses_AreReadOnly(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	_, token := api.user("ada")

	item := fmt.Sprintf("/api/courses/%d/", cs225.ID)
	requests := []struct{ method, path string }{
		{http.MethodPost, "/api/courses/"},
		{http.MethodPut, "/api/courses/"},
		{http.MethodPatch, "/api/courses/"},
		{http.MethodDelete, "/api/courses/"},
		{http.MethodPut, item},
		{http.MethodPatch, item},
		{http.MethodDelete, item},
	}

	for _, r := range requests {
		for _, tok := range []string{"", token} {
			w := api.do(r.method, r.path, tok, `{"course_id":"CS 999","dept":"CS","title":"X","credits":3}`)
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s auth=%t", r.method, r.path, tok != "")
		}
	}

	courses, err := api.repos.Courses.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestRecommendations(t *testing.T) {
	api := newTestAPI(t)
	api.course("CS 374", "CS")
	api.course("CS 225", "CS")
	_, token := api.user("ada")

	w := api.do(http.MethodGet, "/api/recommendations/?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.RecommendationsResponse](t, w)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "CS 225", resp.Recommendations[0].CourseID)

	api.course("MATH 241", "MATH")
	api.course("CHEM 102", "CHEM")

	w = api.do(http.MethodGet, "/api/recommendations/?limit=2", token, nil)
	resp = decode[dto.RecommendationsResponse](t, w)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "CHEM 102", resp.Recommendations[0].CourseID)
	assert.Equal(t, "CS 225", resp.Recommendations[1].CourseID)

	// Default limit is 5; the catalog only holds 4.
	w = api.do(http.MethodGet, "/api/recommendations/", token, nil)
	assert.Len(t, decode[dto.RecommendationsResponse](t, w).Recommendations, 4)

	w = api.do(http.MethodGet, "/api/recommendations/?limit=0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recommendations":[]}`, w.Body.String())

	for _, bad := range []string{"-1", "abc", "2.5"} {
		w = api.do(http.MethodGet, "/api/recommendations/?limit="+bad, token, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, bad)
		errResp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "limit", errResp.Error.Field)
	}
}

func TestRecommendations_DefaultLimit(t *testing.T) {
	api := newTestAPI(t)
	for i := 0; i < 7; i++ {
		api.course(fmt.Sprintf("CS %d", 100+i), "CS")
	}
	_, token := api.user("ada")

	w := api.do(http.MethodGet, "/api/recommendations/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.RecommendationsResponse](t, w).Recommendations, 5)
}

func TestProfiles_LazyCreationOnRetrieve(t *testing.T) {
	api := newTestAPI(t)
	ada, token := api.user("ada")

	w := api.do(http.MethodGet, "/api/profiles/current/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, ada.ID, first.User)
	assert.Empty(t, first.Major)
	assert.Empty(t, first.Year)

	w = api.do(http.MethodGet, "/api/profiles/current/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.ID, decode[dto.ProfileResponse](t, w).ID)

	w = api.do(http.MethodGet, "/api/profiles/", token, nil)
	profiles := decode[[]dto.ProfileResponse](t, w)
	require.Len(t, profiles, 1)
	assert.Equal(t, first.ID, profiles[0].ID)
}

func TestProfiles_PathIDNeverSelectsAnotherUser(t *testing.T) {
	api := newTestAPI(t)
	_, adaToken := api.user("ada")
	bob, bobToken := api.user("bob")

	w := api.do(http.MethodPost, "/api/profiles/", adaToken, map[string]string{"major": "Physics"})
	require.Equal(t, http.StatusCreated, w.Code)
	adaProfile := decode[dto.ProfileResponse](t, w)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/profiles/%d/", adaProfile.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, bob.ID, got.User)
	assert.NotEqual(t, adaProfile.ID, got.ID)
	assert.Empty(t, got.Major)

	w = api.do(http.MethodGet, "/api/profiles/", bobToken, nil)
	for _, p := range decode[[]dto.ProfileResponse](t, w) {
		assert.Equal(t, bob.ID, p.User)
	}
}

func TestProfiles_CreateForcesOwner(t *testing.T) {
	api := newTestAPI(t)
	ada, token := api.user("ada")
	bob, _ := api.user("bob")

	w := api.do(http.MethodPost, "/api/profiles/", token, map[string]interface{}{
		"user":  bob.ID,
		"major": "Computer Science",
		"year":  "Junior",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, ada.ID, created.User)
	assert.Equal(t, "Computer Science", created.Major)

	_, err := api.repos.Profiles.GetByUserID(context.Background(), bob.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	w = api.do(http.MethodPost, "/api/profiles/", token, map[string]string{"major": "Math"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "user", resp.Error.Field)
	assert.Equal(t, "A profile for this user already exists.", resp.Error.Message)
}

func TestProfiles_UpdateAndDelete(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.user("ada")

	w := api.do(http.MethodPatch, "/api/profiles/me/", token, map[string]string{"major": "CS", "year": "Senior"})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, "CS", patched.Major)
	assert.Equal(t, "Senior", patched.Year)

	w = api.do(http.MethodPatch, "/api/profiles/me/", token, map[string]string{"year": "Junior"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CS", decode[dto.ProfileResponse](t, w).Major)

	w = api.do(http.MethodPut, "/api/profiles/me/", token, map[string]string{"major": "Math"})
	require.Equal(t, http.StatusOK, w.Code)
	replaced := decode[dto.ProfileResponse](t, w)
	assert.Equal(t, patched.ID, replaced.ID)
	assert.Equal(t, "Math", replaced.Major)
	assert.Empty(t, replaced.Year)

	w = api.do(http.MethodDelete, "/api/profiles/me/", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, "/api/profiles/", token, nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do(http.MethodDelete, "/api/profiles/me/", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBookmarks_CreateForcesOwnerAndRejectsDuplicates(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	ada, token := api.user("ada")
	bob, _ := api.user("bob")

	w := api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": cs225.ID, "user": bob.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[dto.BookmarkResponse](t, w)
	assert.Equal(t, ada.ID, created.User)
	assert.Equal(t, cs225.ID, created.Course)
	assert.False(t, created.CreatedAt.IsZero())

	w = api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": cs225.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "course", resp.Error.Field)
	assert.Contains(t, resp.Error.Message, "already bookmarked")

	w = api.do(http.MethodGet, "/api/bookmarks/", token, nil)
	list := decode[[]dto.BookmarkResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestBookmarks_ConcurrentDuplicateCreates(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	_, token := api.user("ada")

	const attempts = 8
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": cs225.ID}).Code
		}(i)
	}
	wg.Wait()

	counts := map[int]int{}
	for _, c := range codes {
		counts[c]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusBadRequest: attempts - 1}, counts)
}

func TestBookmarks_InvalidCourse(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.user("ada")

	w := api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": 404})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "course", decode[dto.ErrorResponse](t, w).Error.Field)

	w = api.do(http.MethodPost, "/api/bookmarks/", token, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "course", decode[dto.ErrorResponse](t, w).Error.Field)
}

func TestBookmarks_CourseAsString(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	_, token := api.user("ada")

	w := api.do(http.MethodPost, "/api/bookmarks/", token, fmt.Sprintf(`{"course":"%d"}`, cs225.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, cs225.ID, decode[dto.BookmarkResponse](t, w).Course)

	w = api.do(http.MethodPost, "/api/bookmarks/", token, `{"course":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, "course", resp.Error.Field)
	assert.Equal(t, "Incorrect type. Expected pk value, received string.", resp.Error.Message)
}

func TestBookmarks_ListNewestFirst(t *testing.T) {
	api := newTestAPI(t)
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	tick := 0
	api.db.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})

	courses := []*models.Course{api.course("CS 225", "CS"), api.course("CS 374", "CS"), api.course("MATH 241", "MATH")}
	_, token := api.user("ada")

	for _, c := range courses {
		w := api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": c.ID})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(http.MethodGet, "/api/bookmarks/", token, nil)
	list := decode[[]dto.BookmarkResponse](t, w)
	require.Len(t, list, 3)
	assert.Equal(t, courses[2].ID, list[0].Course)
	assert.Equal(t, courses[1].ID, list[1].Course)
	assert.Equal(t, courses[0].ID, list[2].Course)
}

func TestBookmarks_OwnershipIsolation(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	_, adaToken := api.user("ada")
	bob, bobToken := api.user("bob")

	w := api.do(http.MethodPost, "/api/bookmarks/", adaToken, map[string]int64{"course": cs225.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	adaBookmark := decode[dto.BookmarkResponse](t, w)
	path := fmt.Sprintf("/api/bookmarks/%d/", adaBookmark.ID)

	w = api.do(http.MethodGet, "/api/bookmarks/", bobToken, nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, bobToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, path, bobToken, map[string]int64{"course": cs225.ID}).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, bobToken, nil).Code)

	w = api.do(http.MethodGet, path, adaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, bob.ID, decode[dto.BookmarkResponse](t, w).User)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path, adaToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, adaToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/bookmarks/abc/", adaToken, nil).Code)
}

func TestBookmarks_Update(t *testing.T) {
	api := newTestAPI(t)
	cs225 := api.course("CS 225", "CS")
	cs374 := api.course("CS 374", "CS")
	math := api.course("MATH 241", "MATH")
	_, token := api.user("ada")

	w := api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": cs225.ID})
	first := decode[dto.BookmarkResponse](t, w)
	w = api.do(http.MethodPost, "/api/bookmarks/", token, map[string]int64{"course": cs374.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	path := fmt.Sprintf("/api/bookmarks/%d/", first.ID)

	w = api.do(http.MethodPut, path, token, map[string]int64{"course": math.ID})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[dto.BookmarkResponse](t, w)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, math.ID, updated.Course)

	w = api.do(http.MethodPatch, path, token, map[string]int64{"course": cs374.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, w).Error.Message, "already bookmarked")

	w = api.do(http.MethodPatch, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, math.ID, decode[dto.BookmarkResponse](t, w).Course)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)
	api.course("CS 225", "CS")

	w := api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
		"username": "grace",
		"email":    "grace@example.edu",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode[dto.AuthResponse](t, w)
	assert.Equal(t, "grace", registered.User.Username)
	assert.NotEmpty(t, registered.Token.AccessToken)

	w = api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
		"username": "grace",
		"password": "another-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login/", "", map[string]string{"username": "grace", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login/", "", map[string]string{"username": "grace", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[dto.AuthResponse](t, w).Token.AccessToken

	w = api.do(http.MethodGet, "/api/recommendations/", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_RegisterValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{"username": "bad name!", "password": "long-enough"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username", decode[dto.ErrorResponse](t, w).Error.Field)

	w = api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{"username": "ok", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "password", decode[dto.ErrorResponse](t, w).Error.Field)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(http.MethodGet, "/api/health/", "", nil)

	w := api.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coursehub_api_requests_total")
}
