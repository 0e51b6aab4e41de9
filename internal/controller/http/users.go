package http

import (
	"net/http"

	"game-platform/internal/models"
	"game-platform/internal/presenter"
	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type usersStore interface {
	Create(*models.User) error
	Get(uint64) (*models.User, error)
	List() ([]models.User, error)
	Patch(uint64, map[string]interface{}) (*models.User, error)
	Delete(uint64) error
}

type UsersHandler struct {
	users usersStore
	log   *logger.Logger
}

func NewUsersHandler(users usersStore, log *logger.Logger) *UsersHandler {
	return &UsersHandler{users: users, log: log}
}

func (h *UsersHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.Get)
	rg.POST("/users", h.Create)
	rg.PUT("/users/:id", h.Update)
	rg.PATCH("/users/:id", h.Update)
	rg.DELETE("/users/:id", h.Delete)
}

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	AvatarURL    string `json:"avatar_url"`
	Bio          string `json:"bio"`
	Is2FAEnabled bool   `json:"is_2fa_enabled"`
}

// List godoc
// @Summary      List users
// @Description  Get all users in their public representation
// @Tags         users
// @Produce      json
// @Success      200  {array}  presenter.UserPublic
// @Router       /users [get]
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]presenter.UserPublic, len(users))
	for i, u := range users {
		out[i] = presenter.PublicUser(u)
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  presenter.UserPublic
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PublicUser(*user))
}

// Create godoc
// @Summary      Create user
// @Description  Register a new account. The password is stored bcrypt-hashed
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User data"
// @Success      201  {object}  presenter.UserPublic
// @Failure      400  {object}  map[string]string
// @Router       /users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Password:     string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		Is2FAEnabled: req.Is2FAEnabled,
		IsActive:     true,
	}

	if err := h.users.Create(user); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.PublicUser(*user))
}

// Update godoc
// @Summary      Update user
// @Description  Apply the provided fields to an account. A new password is re-hashed
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  presenter.UserPublic
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [patch]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	if raw, exists := fields["password"]; exists {
		password, isString := raw.(string)
		if !isString || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		fields["password"] = string(hash)
	}

	user, err := h.users.Patch(id, fields)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.PublicUser(*user))
}

// Delete godoc
// @Summary      Delete user
// @Description  Delete an account and everything it owns (cascading)
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
