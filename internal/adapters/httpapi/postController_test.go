package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	postapp "cuff/internal/core/post/service"
	postPort "cuff/internal/ports/post"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakePostUseCase struct {
	createErr error
	created   *postPort.PostDTO
	gotInput  postPort.CreatePostInput
}

func (f *fakePostUseCase) CreatePost(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	f.gotInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakePostUseCase) GetPostByID(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	return nil, postPort.ErrNotFound
}

func (f *fakePostUseCase) ListActivePosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	return nil, nil
}

func (f *fakePostUseCase) ListRecentPosts(ctx context.Context, limit int64) ([]*postPort.PostDTO, error) {
	return nil, nil
}

func (f *fakePostUseCase) UpdatePost(ctx context.Context, id uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	return nil, postPort.ErrNotFound
}

func (f *fakePostUseCase) DeletePost(ctx context.Context, id uint) error {
	return postPort.ErrNotFound
}

func newPostRouter(uc PostUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewPostController(uc)
	r.POST("/api/posts", ctl.CreatePost)
	r.GET("/api/posts/:id", ctl.GetPostByID)
	return r
}

const createBody = `{
	"userId": 1,
	"title": "Free bread",
	"location": "Community center",
	"availableFrom": "2026-08-28T10:00:00Z",
	"availableUntil": "2026-08-28T16:00:00Z"
}`

func TestCreatePostReturnsCreated(t *testing.T) {
	uc := &fakePostUseCase{created: &postPort.PostDTO{
		ID:     7,
		UserID: 1,
		Title:  "Free bread",
		Status: "active",
	}}
	r := newPostRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"id":7`)
	require.Equal(t, uint(1), uc.gotInput.UserID)
	require.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), uc.gotInput.AvailableFrom.UTC())
}

func TestCreatePostMapsUnauthorizedToForbidden(t *testing.T) {
	uc := &fakePostUseCase{createErr: postapp.ErrUnauthorized}
	r := newPostRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreatePostMapsInvalidWindowToBadRequest(t *testing.T) {
	uc := &fakePostUseCase{createErr: postapp.ErrInvalidWindow}
	r := newPostRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePostRejectsMissingFields(t *testing.T) {
	uc := &fakePostUseCase{}
	r := newPostRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title": "no user"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUnknownPostReturnsNotFound(t *testing.T) {
	r := newPostRouter(&fakePostUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/123", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
