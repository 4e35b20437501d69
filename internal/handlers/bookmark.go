package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/apolzek/neosearch/internal/auth"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/dto"
	"github.com/apolzek/neosearch/internal/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

// Create godoc
// @Summary      Add a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBookmarkRequest  true  "Bookmark body"
// @Success      201   {object}  dto.BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := auth.UserIDFromContext(c)
	b, err := h.svc.Add(c.Request.Context(), userID, req.URL, req.Description, req.Tags, req.Category, req.IsPublic)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bookmarkToResponse(b))
}

// List godoc
// @Summary      List the user's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListBookmarksResponse
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListBookmarksResponse{Bookmarks: bookmarksToResponses(list)})
}

// Delete godoc
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id   path  int  true  "Bookmark ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bookmarkToResponse(b dom.Bookmark) dto.BookmarkResponse {
	return dto.BookmarkResponse{
		ID:          b.ID,
		URL:         b.URL,
		Description: b.Description,
		Tags:        b.Tags,
		Category:    b.Category,
		Source:      b.Source,
		IsPublic:    b.IsPublic,
		CreatedAt:   b.CreatedAt,
	}
}

func bookmarksToResponses(list []dom.Bookmark) []dto.BookmarkResponse {
	out := make([]dto.BookmarkResponse, len(list))
	for i := range list {
		out[i] = bookmarkToResponse(list[i])
	}
	return out
}
