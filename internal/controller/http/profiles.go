package http

import (
	"net/http"
	"strconv"

	"game-platform/internal/models"
	"game-platform/internal/presenter"
	"game-platform/internal/repo"
	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type profilesStore interface {
	Create(*models.Profile) error
	GetDetailed(uint64) (*repo.ProfileDetail, error)
	ListDetailed(repo.ProfileFilter) ([]repo.ProfileDetail, error)
	Patch(uint64, map[string]interface{}) (*models.Profile, error)
	Delete(uint64) error
}

type ProfilesHandler struct {
	profiles profilesStore
	log      *logger.Logger
}

func NewProfilesHandler(profiles profilesStore, log *logger.Logger) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles, log: log}
}

func (h *ProfilesHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/profiles", h.List)
	rg.GET("/profiles/:id", h.Get)
	rg.POST("/profiles", h.Create)
	rg.PUT("/profiles/:id", h.Update)
	rg.PATCH("/profiles/:id", h.Update)
	rg.DELETE("/profiles/:id", h.Delete)
}

// List godoc
// @Summary      List profiles
// @Description  Profiles with the owning user, game associations, follower count and rating. Searchable by username or game name
// @Tags         profiles
// @Produce      json
// @Param        search query string false "Substring match on username or game name"
// @Param        game query int false "Restrict to users playing this game id"
// @Param        sort_by query string false "Ordering" Enums(rating, followers, newest)
// @Success      200  {array}  presenter.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Router       /profiles [get]
func (h *ProfilesHandler) List(c *gin.Context) {
	filter := repo.ProfileFilter{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
	}

	if gameStr := c.Query("game"); gameStr != "" {
		gameID, err := strconv.ParseUint(gameStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}
		// No row carries game id 0, so the filter matches nothing.
		if gameID == 0 {
			c.JSON(http.StatusOK, []presenter.ProfileResponse{})
			return
		}
		filter.GameID = gameID
	}

	details, err := h.profiles.ListDetailed(filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]presenter.ProfileResponse, len(details))
	for i, d := range details {
		out[i] = presenter.Profile(d)
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary      Get profile by user ID
// @Tags         profiles
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  presenter.ProfileResponse
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{id} [get]
func (h *ProfilesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.profiles.GetDetailed(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Profile(*detail))
}

// Create godoc
// @Summary      Create profile
// @Description  Create the profile for a user. A user has at most one profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body models.Profile true "Profile data"
// @Success      201  {object}  presenter.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Router       /profiles [post]
func (h *ProfilesHandler) Create(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if profile.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.profiles.Create(&profile); err != nil {
		respondError(c, h.log, err)
		return
	}

	detail, err := h.profiles.GetDetailed(profile.UserID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Profile(*detail))
}

// Update godoc
// @Summary      Update profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  presenter.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{id} [patch]
func (h *ProfilesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}
	// The profile key is the user id; it is not updatable.
	delete(fields, "user_id")

	if _, err := h.profiles.Patch(id, fields); err != nil {
		respondError(c, h.log, err)
		return
	}

	detail, err := h.profiles.GetDetailed(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Profile(*detail))
}

// Delete godoc
// @Summary      Delete profile
// @Tags         profiles
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{id} [delete]
func (h *ProfilesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.profiles.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
