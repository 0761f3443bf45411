package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadImage stores a menu image and returns the public URL to embed in the
// menu item.
func (ctl *Controller) UploadImage(c *gin.Context) {
	url, ok := ctl.storeUploadedFile(c, "menu-images")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (ctl *Controller) storeUploadedFile(c *gin.Context, bucket string) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read file"})
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read file"})
		return "", false
	}

	url, err := ctl.Store.Upload(bucket, fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return "", false
	}

	return url, true
}
