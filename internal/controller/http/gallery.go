package http

import (
	"net/http"

	"game-platform/internal/models"
	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type galleryStore interface {
	Create(*models.UserGallery) error
	Get(uint64) (*models.UserGallery, error)
	List() ([]models.UserGallery, error)
	Patch(uint64, map[string]interface{}) (*models.UserGallery, error)
	Delete(uint64) error
}

type objectStorage interface {
	KeyFromURL(rawURL string) string
	DeleteFile(key string) error
}

// GalleryHandler manages gallery items. Deleting an item also removes its
// image from object storage when the image lives in the configured bucket.
type GalleryHandler struct {
	gallery galleryStore
	storage objectStorage
	log     *logger.Logger
}

func NewGalleryHandler(gallery galleryStore, storage objectStorage, log *logger.Logger) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, storage: storage, log: log}
}

func (h *GalleryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/gallery", h.List)
	rg.GET("/gallery/:id", h.Get)
	rg.POST("/gallery", h.Create)
	rg.PUT("/gallery/:id", h.Update)
	rg.PATCH("/gallery/:id", h.Update)
	rg.DELETE("/gallery/:id", h.Delete)
}

// List godoc
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  models.UserGallery
// @Router       /gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.gallery.List()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary      Get gallery item by ID
// @Tags         gallery
// @Produce      json
// @Param        id path int true "Gallery item ID"
// @Success      200  {object}  models.UserGallery
// @Failure      404  {object}  map[string]string
// @Router       /gallery/{id} [get]
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.gallery.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary      Create gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        request body models.UserGallery true "Gallery item data"
// @Success      201  {object}  models.UserGallery
// @Failure      400  {object}  map[string]string
// @Router       /gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var item models.UserGallery
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.ID = 0
	if err := h.gallery.Create(&item); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary      Update gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        id path int true "Gallery item ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  models.UserGallery
// @Failure      404  {object}  map[string]string
// @Router       /gallery/{id} [patch]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	item, err := h.gallery.Patch(id, fields)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary      Delete gallery item
// @Description  Remove a gallery item and its stored image
// @Tags         gallery
// @Produce      json
// @Param        id path int true "Gallery item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.gallery.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.gallery.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}

	// Storage cleanup is best effort; the row is already gone and a stray
	// object is harmless.
	if h.storage != nil {
		if key := h.storage.KeyFromURL(item.ImageURL); key != "" {
			if err := h.storage.DeleteFile(key); err != nil {
				h.log.Warn("Gallery item %d deleted but object %q removal failed: %v", id, key, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
