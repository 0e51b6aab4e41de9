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

type postsStore interface {
	Create(*models.ContentPost) error
	GetDetailed(uint64) (*repo.PostDetail, error)
	ListDetailed(authorID uint64) ([]repo.PostDetail, error)
	Patch(uint64, map[string]interface{}) (*models.ContentPost, error)
	Delete(uint64) error
}

type PostsHandler struct {
	posts postsStore
	log   *logger.Logger
}

func NewPostsHandler(posts postsStore, log *logger.Logger) *PostsHandler {
	return &PostsHandler{posts: posts, log: log}
}

func (h *PostsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", h.List)
	rg.GET("/posts/:id", h.Get)
	rg.POST("/posts", h.Create)
	rg.PUT("/posts/:id", h.Update)
	rg.PATCH("/posts/:id", h.Update)
	rg.DELETE("/posts/:id", h.Delete)
}

// List godoc
// @Summary      List posts
// @Description  Posts with the author embedded and like/comment counts computed at read time
// @Tags         posts
// @Produce      json
// @Param        author query int false "Restrict to posts by this author id"
// @Success      200  {array}  presenter.PostResponse
// @Failure      400  {object}  map[string]string
// @Router       /posts [get]
func (h *PostsHandler) List(c *gin.Context) {
	var authorID uint64
	if authorStr := c.Query("author"); authorStr != "" {
		parsed, err := strconv.ParseUint(authorStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
			return
		}
		// No row carries author id 0, so the filter matches nothing.
		if parsed == 0 {
			c.JSON(http.StatusOK, []presenter.PostResponse{})
			return
		}
		authorID = parsed
	}

	details, err := h.posts.ListDetailed(authorID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]presenter.PostResponse, len(details))
	for i, d := range details {
		out[i] = presenter.Post(d)
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  presenter.PostResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.posts.GetDetailed(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Post(*detail))
}

// Create godoc
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body models.ContentPost true "Post data"
// @Success      201  {object}  presenter.PostResponse
// @Failure      400  {object}  map[string]string
// @Router       /posts [post]
func (h *PostsHandler) Create(c *gin.Context) {
	var post models.ContentPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post.ID = 0
	if err := h.posts.Create(&post); err != nil {
		respondError(c, h.log, err)
		return
	}

	detail, err := h.posts.GetDetailed(post.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Post(*detail))
}

// Update godoc
// @Summary      Update post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  presenter.PostResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [patch]
func (h *PostsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	if _, err := h.posts.Patch(id, fields); err != nil {
		respondError(c, h.log, err)
		return
	}

	detail, err := h.posts.GetDetailed(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Post(*detail))
}

// Delete godoc
// @Summary      Delete post
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
