package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/src/app/http/handler"
	"pressroom/src/app/middleware"
	"pressroom/src/core/domain"
	"pressroom/src/core/usecase"
)

type memRepo struct {
	articles map[domain.ArticleID]domain.Article
	storeErr error
}

func newMemRepo() *memRepo {
	return &memRepo{articles: make(map[domain.ArticleID]domain.Article)}
}

func (m *memRepo) ResolveByID(_ context.Context, id domain.ArticleID) (*domain.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memRepo) ResolveByTitle(_ context.Context, title domain.Title) (*domain.Article, error) {
	for _, a := range m.articles {
		if a.Title == title && a.Status != domain.StatusDeleted {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memRepo) apply(aggregate domain.Article) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.articles[aggregate.ID] = aggregate
	return nil
}

func (m *memRepo) StoreCreated(_ context.Context, ev domain.ArticleCreated) error {
	return m.apply(ev.Aggregate)
}

func (m *memRepo) StoreReviewStarted(_ context.Context, ev domain.ArticleReviewStarted) error {
	return m.apply(ev.Aggregate)
}

func (m *memRepo) StorePublished(_ context.Context, ev domain.ArticlePublished) error {
	return m.apply(ev.Aggregate)
}

func (m *memRepo) StoreRejected(_ context.Context, ev domain.ArticleRejected) error {
	return m.apply(ev.Aggregate)
}

func (m *memRepo) StoreUnpublished(_ context.Context, ev domain.ArticleUnpublished) error {
	return m.apply(ev.Aggregate)
}

func (m *memRepo) StoreDeleted(_ context.Context, ev domain.ArticleDeleted) error {
	return m.apply(ev.Aggregate)
}

func newTestRouter(repo *memRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewArticleService(repo, repo, domain.EventFactory{}, log)
	h := handler.NewArticleHandler(svc)

	router := gin.New()
	router.Use(middleware.RequestID())
	v1 := router.Group("/v1")
	v1.POST("/articles", h.Create)
	v1.GET("/articles/:article_id", h.Get)
	v1.POST("/articles/:article_id/start-review", h.StartReview)
	v1.POST("/articles/:article_id/publish", h.Publish)
	v1.POST("/articles/:article_id/reject", h.Reject)
	v1.POST("/articles/:article_id/unpublish", h.Unpublish)
	v1.DELETE("/articles/:article_id", h.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %v", body)
	code, _ := errObj["code"].(string)
	return code
}

func TestCreateArticleEndpoint(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Breaking News", "content": "Something happened."}`)

	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ArticleCreated", data["event_name"])

	article := data["article"].(map[string]any)
	assert.Equal(t, "Breaking News", article["title"])
	assert.Equal(t, "DRAFT", article["status"])
	assert.NotEmpty(t, article["id"])
}

func TestCreateArticleEndpoint_InvalidPayload(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles", `{"title": "No Content"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
}

func TestCreateArticleEndpoint_InvalidTitle(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "   ", "content": "body"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidTitle", errorCode(t, body))
}

func TestCreateArticleEndpoint_DuplicateTitle(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, _ := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Breaking News", "content": "first"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Breaking News", "content": "second"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TitleDuplicated", errorCode(t, body))
}

func TestGetArticleEndpoint(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(repo)

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Readable", "content": "body"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]any)["article"].(map[string]any)["id"].(string)

	w, body = doJSON(t, router, http.MethodGet, "/v1/articles/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	article := body["data"].(map[string]any)
	assert.Equal(t, id, article["id"])
	assert.Equal(t, "DRAFT", article["status"])
}

func TestGetArticleEndpoint_NotFound(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodGet,
		"/v1/articles/"+domain.NewArticleID().String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ArticleNotFound", errorCode(t, body))
}

func TestGetArticleEndpoint_BadID(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodGet, "/v1/articles/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, body))
}

func TestLifecycleEndpoints(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Lifecycle", "content": "body"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]any)["article"].(map[string]any)["id"].(string)
	base := "/v1/articles/" + id

	w, body = doJSON(t, router, http.MethodPost, base+"/start-review",
		`{"reviewer_id": "4f2b9a6e-8d1c-4e0a-9f3b-2c5d7e8a1b02"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ArticleReviewStarted", body["data"].(map[string]any)["event_name"])

	w, body = doJSON(t, router, http.MethodPost, base+"/publish", "")
	require.Equal(t, http.StatusOK, w.Code)
	article := body["data"].(map[string]any)["article"].(map[string]any)
	assert.Equal(t, "PUBLISHED", article["status"])
	assert.NotEmpty(t, article["published_at"])

	w, body = doJSON(t, router, http.MethodPost, base+"/unpublish", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IN_REVIEW", body["data"].(map[string]any)["article"].(map[string]any)["status"])

	w, body = doJSON(t, router, http.MethodPost, base+"/reject", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DRAFT", body["data"].(map[string]any)["article"].(map[string]any)["status"])

	w, body = doJSON(t, router, http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DELETED", body["data"].(map[string]any)["article"].(map[string]any)["status"])

	// Deleted is terminal.
	w, body = doJSON(t, router, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AlreadyDeleted", errorCode(t, body))
}

func TestPublishEndpoint_FromDraft(t *testing.T) {
	router := newTestRouter(newMemRepo())

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Draft Only", "content": "body"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]any)["article"].(map[string]any)["id"].(string)

	w, body = doJSON(t, router, http.MethodPost, "/v1/articles/"+id+"/publish", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ReviewRequired", errorCode(t, body))
}

func TestStorageFailureEndpoint(t *testing.T) {
	repo := newMemRepo()
	router := newTestRouter(repo)
	repo.storeErr = domain.NewStorageFailure(assert.AnError)

	w, body := doJSON(t, router, http.MethodPost, "/v1/articles",
		`{"title": "Doomed", "content": "body"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, body))
}
