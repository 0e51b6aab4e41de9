package http

import (
	"mime/multipart"
	"net/http"

	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type imageUploader interface {
	UploadImage(fileHeader *multipart.FileHeader, folder string) (string, error)
}

// UploadsHandler stores images in object storage and hands back the public
// URL, which clients then set on avatar_url, icon_url and the like.
type UploadsHandler struct {
	storage imageUploader
	log     *logger.Logger
}

func NewUploadsHandler(storage imageUploader, log *logger.Logger) *UploadsHandler {
	return &UploadsHandler{storage: storage, log: log}
}

func (h *UploadsHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

var uploadFolders = map[string]bool{
	"avatars":  true,
	"posts":    true,
	"gallery":  true,
	"games":    true,
	"previews": true,
}

// Upload godoc
// @Summary      Upload an image
// @Description  Store an image and return its URL. The optional folder groups objects by purpose
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file (jpg, png, gif, webp)"
// @Param        folder formData string false "Target folder" Enums(avatars, posts, gallery, games, previews)
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadsHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	} else if !uploadFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown folder"})
		return
	}

	url, err := h.storage.UploadImage(fileHeader, folder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Uploaded image to %s", url)
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
