package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database/profile"
)

// profileRequest is a partial profile update: nil fields keep their stored
// values. The merge over the current row happens here, before the repository
// sees a complete record.
type profileRequest struct {
	Name        *string           `json:"name"`
	Email       *string           `json:"email"`
	AvatarPath  *string           `json:"avatar_path"`
	Preferences map[string]string `json:"preferences"`
}

// ProfileController handles the user panel intents.
type ProfileController struct {
	repo *profile.Repository
}

func NewProfileController(repo *profile.Repository) *ProfileController {
	return &ProfileController{repo: repo}
}

// Get returns the user profile.
// GET /api/profile
func (pc *ProfileController) Get(c *gin.Context) {
	p, err := pc.repo.Get()
	if err != nil {
		respondInternalError(c, err, "get profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update merges the supplied fields over the stored profile and saves the
// result. The name must remain non-empty.
// PUT /api/profile
func (pc *ProfileController) Update(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid profile payload")
		return
	}

	current, err := pc.repo.Get()
	if err != nil {
		respondInternalError(c, err, "get profile")
		return
	}

	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.AvatarPath != nil {
		current.AvatarPath = *req.AvatarPath
	}
	if req.Preferences != nil {
		current.Preferences = req.Preferences
	}

	if current.Name == "" {
		respondBadRequest(c, "name is required")
		return
	}

	if err := pc.repo.Update(current); err != nil {
		respondInternalError(c, err, "could not update the profile")
		return
	}
	respondSuccess(c, "Profile updated")
}
