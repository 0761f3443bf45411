package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Neeto7/neetocafebackoffice/models"
	"github.com/Neeto7/neetocafebackoffice/realtime"
)

// GetMenu lists menu items, newest first. Cashier terminals pass
// ?available=true to hide items taken off sale.
func (ctl *Controller) GetMenu(c *gin.Context) {
	query := ctl.DB.Order("id desc")
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateMenuItem adds a menu item. Slug is human-assigned and unique.
func (ctl *Controller) CreateMenuItem(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		Slug        string  `json:"slug" binding:"required"`
		Category    string  `json:"category"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Description string  `json:"description"`
		ImageURL    string  `json:"image_url" binding:"required"`
		IsAvailable *bool   `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Incomplete menu data"})
		return
	}

	var existing models.MenuItem
	if err := ctl.DB.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Menu item with this slug already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        input.Name,
		Slug:        input.Slug,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := ctl.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctl.Hub.Publish("menu_items", realtime.EventInsert)
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// UpdateMenuItem edits a menu item addressed by slug; absent fields stay as
// they are. Covers the availability toggle.
func (ctl *Controller) UpdateMenuItem(c *gin.Context) {
	slug := c.Param("slug")

	var item models.MenuItem
	if err := ctl.DB.Where("slug = ?", slug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
		ImageURL    *string  `json:"image_url"`
		IsAvailable *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
			return
		}
		updates["price"] = *input.Price
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := ctl.DB.Model(&item).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctl.Hub.Publish("menu_items", realtime.EventUpdate)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "data": item})
}

// DeleteMenuItem removes a menu item by slug. Hard delete; order items keep
// their own copies of name and price.
func (ctl *Controller) DeleteMenuItem(c *gin.Context) {
	slug := c.Param("slug")

	result := ctl.DB.Where("slug = ?", slug).Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	ctl.Hub.Publish("menu_items", realtime.EventDelete)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
