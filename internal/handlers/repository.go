package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/apolzek/neosearch/internal/auth"
	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/dto"
	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/service"

	"github.com/gin-gonic/gin"
)

type RepositoryHandler struct {
	svc *service.RepositoryService
}

func NewRepositoryHandler(svc *service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{svc: svc}
}

// Create godoc
// @Summary      Add a repository and import its feed
// @Tags         repositories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateRepositoryRequest  true  "Repository body"
// @Success      201   {object}  dto.ImportResultResponse
// @Failure      400   {object}  map[string]string
// @Router       /repositories [post]
func (h *RepositoryHandler) Create(c *gin.Context) {
	var req dto.CreateRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := auth.UserIDFromContext(c)
	sum, err := h.svc.Import(c.Request.Context(), userID, req.Name, req.URL, req.IsPublic)
	if err != nil {
		writeImportError(c, err)
		return
	}
	c.JSON(http.StatusCreated, importResult(sum,
		fmt.Sprintf("successfully imported %d bookmarks from %s", sum.Imported, req.Name)))
}

// List godoc
// @Summary      List the user's repositories
// @Tags         repositories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListRepositoriesResponse
// @Failure      500  {object}  map[string]string
// @Router       /repositories [get]
func (h *RepositoryHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListRepositoriesResponse{Repositories: repositoriesToResponses(list)})
}

// Sync godoc
// @Summary      Re-sync a repository's bookmarks from its feed
// @Tags         repositories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Repository ID"
// @Success      200  {object}  dto.ImportResultResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /repositories/{id}/sync [post]
func (h *RepositoryHandler) Sync(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	sum, err := h.svc.Resync(c.Request.Context(), userID, id)
	if err != nil {
		writeImportError(c, err)
		return
	}
	c.JSON(http.StatusOK, importResult(sum,
		fmt.Sprintf("successfully synced %d bookmarks", sum.Imported)))
}

// Delete godoc
// @Summary      Delete a repository and its imported bookmarks
// @Tags         repositories
// @Security     BearerAuth
// @Param        id   path  int  true  "Repository ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /repositories/{id} [delete]
func (h *RepositoryHandler) Delete(c *gin.Context) {
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

// writeImportError maps reconciliation failures: validation and fetch
// problems are the caller's to fix (400), missing repositories are 404.
func writeImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, feed.ErrMalformedFeed),
		errors.Is(err, feed.ErrInvalidJSON),
		errors.Is(err, feed.ErrUnreachable),
		errors.Is(err, feed.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func importResult(sum service.ImportSummary, message string) dto.ImportResultResponse {
	return dto.ImportResultResponse{
		RepositoryID:      sum.RepositoryID,
		BookmarksImported: sum.Imported,
		BookmarksSkipped:  sum.Skipped,
		TotalEntries:      sum.Total,
		Message:           message,
	}
}

func repositoryToResponse(r dom.Repository) dto.RepositoryResponse {
	return dto.RepositoryResponse{
		ID:         r.ID,
		Name:       r.Name,
		URL:        r.URL,
		IsPublic:   r.IsPublic,
		LastSynced: r.LastSynced,
		CreatedAt:  r.CreatedAt,
	}
}

func repositoriesToResponses(list []dom.Repository) []dto.RepositoryResponse {
	out := make([]dto.RepositoryResponse, len(list))
	for i := range list {
		out[i] = repositoryToResponse(list[i])
	}
	return out
}
