package handlers

import (
	"net/http"

	"github.com/apolzek/neosearch/internal/auth"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/dto"
	"github.com/apolzek/neosearch/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary      Search bookmarks
// @Description  Authenticated requests search the caller's own bookmarks;
// @Description  anonymous requests search public bookmarks across all users.
// @Tags         search
// @Produce      json
// @Param        keyword  query     string  false  "Keyword (case-insensitive substring)"
// @Param        field    query     string  false  "Restrict match to one field (url, description, category, source, tags)"
// @Success      200      {object}  dto.SearchResponse
// @Failure      500      {object}  map[string]string
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	field := c.Query("field")

	if userID := auth.UserIDFromContext(c); userID != 0 {
		list, err := h.svc.Owned(c.Request.Context(), userID, keyword, field)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.SearchResponse{Results: ownedViews(list)})
		return
	}

	list, err := h.svc.Public(c.Request.Context(), keyword, field)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: publicViews(list)})
}

func ownedViews(list []dom.Bookmark) []dto.BookmarkView {
	out := make([]dto.BookmarkView, len(list))
	for i, b := range list {
		out[i] = dto.BookmarkView{
			URL:         b.URL,
			Description: b.Description,
			Tags:        b.Tags,
			Category:    b.Category,
			Source:      b.Source,
		}
	}
	return out
}

func publicViews(list []dom.PublicBookmark) []dto.BookmarkView {
	out := make([]dto.BookmarkView, len(list))
	for i, b := range list {
		out[i] = dto.BookmarkView{
			URL:         b.URL,
			Description: b.Description,
			Tags:        b.Tags,
			Category:    b.Category,
			Source:      b.Source,
			Username:    b.Username,
		}
	}
	return out
}
