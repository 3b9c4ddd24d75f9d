package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/services"
)

type ImageController struct {
	images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

// SendImage lets an admin distribute an image to the student owning the
// target phone number. Multipart form: "phone" field + "image" file.
func (ctl *ImageController) SendImage(c *gin.Context) {
	phone := c.PostForm("phone")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image file"})
		return
	}

	img, err := ctl.images.SendImage(c.Request.Context(), phone, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image sent successfully",
		"image":   img,
	})
}

// ListImages returns the caller's received images, newest first
func (ctl *ImageController) ListImages(c *gin.Context) {
	images, err := ctl.images.ListOwned(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, images)
}
