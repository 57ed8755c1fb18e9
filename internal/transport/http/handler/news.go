package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
	"museum-api/internal/transport/http/middleware"
	"museum-api/internal/transport/http/response"
)

type NewsHandler struct {
	newsService *app.NewsService
}

// ListNewsQuery.PublishedOnly defaults to true when absent.
type ListNewsQuery struct {
	PageQuery
	PublishedOnly *bool  `form:"published_only"`
	Category      string `form:"category" binding:"max=64"`
}

type CreateNewsRequest struct {
	Title       string  `json:"title" binding:"required,notblank,max=255"`
	Content     string  `json:"content" binding:"required,notblank"`
	Summary     *string `json:"summary"`
	Category    *string `json:"category" binding:"omitempty,max=64"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=512"`
	IsPublished bool    `json:"is_published"`
}

type UpdateNewsRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=255"`
	Content     *string `json:"content" binding:"omitempty,notblank"`
	Summary     *string `json:"summary"`
	Category    *string `json:"category" binding:"omitempty,max=64"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=512"`
	IsPublished *bool   `json:"is_published"`
}

func NewNewsHandler(newsService *app.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List(c *gin.Context) {
	var query ListNewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid query parameters")
		return
	}
	publishedOnly := true
	if query.PublishedOnly != nil {
		publishedOnly = *query.PublishedOnly
	}

	items, err := h.newsService.List(c.Request.Context(), app.ListNewsInput{
		PublishedOnly: publishedOnly,
		Category:      query.Category,
		Skip:          query.Skip,
		Limit:         query.Limit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	news, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, news)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	news, err := h.newsService.Create(c.Request.Context(), middleware.CurrentUser(c), app.CreateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, news)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	news, err := h.newsService.Update(c.Request.Context(), id, app.UpdateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, news)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "News deleted successfully")
}
