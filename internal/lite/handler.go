package lite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RepositoryRequest is the JSON body for repository add/delete.
type RepositoryRequest struct {
	Path string `json:"path" binding:"required"`
}

// Handler exposes the lite HTTP surface.
type Handler struct {
	store    *FileStore
	searcher *Searcher
}

// NewHandler returns a new Handler.
func NewHandler(store *FileStore, searcher *Searcher) *Handler {
	return &Handler{store: store, searcher: searcher}
}

// Register mounts all lite routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/repositories/list", h.List)
	r.POST("/repositories/add", h.Add)
	r.POST("/repositories/delete", h.Delete)
	r.GET("/search", h.Search)
}

func (h *Handler) List(c *gin.Context) {
	repos, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}

func (h *Handler) Add(c *gin.Context) {
	var req RepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Add(req.Path); err != nil {
		if errors.Is(err, ErrRepositoryExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "repository added successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	var req RepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Remove(req.Path); err != nil {
		if errors.Is(err, ErrRepositoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "repository deleted successfully"})
}

func (h *Handler) Search(c *gin.Context) {
	results, err := h.searcher.Search(
		c.Request.Context(),
		c.Query("keyword"),
		c.Query("field"),
		c.Query("repository"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
