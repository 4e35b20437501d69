package handlers

import (
	"errors"
	"net/http"
	"time"

	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/dto"
	"github.com/apolzek/neosearch/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get godoc
// @Summary      Public profile of a user
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dto.ProfileResponse
// @Failure      404       {object}  map[string]string
// @Router       /users/{username} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	username := c.Param("username")
	profile, err := h.svc.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		User: dto.UserResponse{
			ID:        profile.User.ID,
			Username:  profile.User.Username,
			CreatedAt: profile.User.CreatedAt.Format(time.RFC3339),
		},
		Repositories: repositoriesToResponses(profile.Repositories),
		Bookmarks:    bookmarksToResponses(profile.Bookmarks),
		Stats: dto.ProfileStats{
			TotalRepositories: len(profile.Repositories),
			TotalBookmarks:    len(profile.Bookmarks),
		},
	})
}

// ListUsers godoc
// @Summary      List users with public content
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *ProfileHandler) ListUsers(c *gin.Context) {
	list, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: publicUsersToResponses(list)})
}

func publicUsersToResponses(list []dom.PublicUser) []dto.PublicUserResponse {
	out := make([]dto.PublicUserResponse, len(list))
	for i, u := range list {
		out[i] = dto.PublicUserResponse{
			Username:           u.Username,
			PublicBookmarks:    u.PublicBookmarks,
			PublicRepositories: u.PublicRepositories,
		}
	}
	return out
}
