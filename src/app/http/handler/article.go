package handler

import (
	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/dto"
	"pressroom/src/app/http/response"
	"pressroom/src/app/middleware"
	"pressroom/src/core/domain"
	"pressroom/src/core/usecase"
)

// ArticleHandler handles article lifecycle endpoints.
type ArticleHandler struct {
	articleService *usecase.ArticleService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *usecase.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create creates a new draft article.
// POST /v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	ev, err := h.articleService.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.EventFromDomain(*ev))
}

// Get returns the current snapshot of an article, including deleted ones.
// GET /v1/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.ArticleFromDomain(*article))
}

// StartReview moves a draft article into review.
// POST /v1/articles/:article_id/start-review
func (h *ArticleHandler) StartReview(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	var req dto.StartReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}
	reviewerID, err := domain.ParseUserID(req.ReviewerID)
	if err != nil {
		response.BadRequest(c, "invalid reviewer id", middleware.GetRequestID(c))
		return
	}

	ev, err := h.articleService.StartReview(c.Request.Context(), id, reviewerID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EventFromDomain(*ev))
}

// Publish makes an in-review article public.
// POST /v1/articles/:article_id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	ev, err := h.articleService.Publish(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EventFromDomain(*ev))
}

// Reject sends an in-review article back to draft.
// POST /v1/articles/:article_id/reject
func (h *ArticleHandler) Reject(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	ev, err := h.articleService.Reject(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EventFromDomain(*ev))
}

// Unpublish takes a published article back into review.
// POST /v1/articles/:article_id/unpublish
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	ev, err := h.articleService.Unpublish(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EventFromDomain(*ev))
}

// Delete soft-deletes an article.
// DELETE /v1/articles/:article_id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	ev, err := h.articleService.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EventFromDomain(*ev))
}

// parseArticleID reads the article id path parameter. On failure it writes
// a 400 response and returns ok=false.
func parseArticleID(c *gin.Context) (domain.ArticleID, bool) {
	id, err := domain.ParseArticleID(c.Param("article_id"))
	if err != nil {
		response.BadRequest(c, "invalid article id", middleware.GetRequestID(c))
		return "", false
	}
	return id, true
}
