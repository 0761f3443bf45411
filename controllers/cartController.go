package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Neeto7/neetocafebackoffice/cart"
	"github.com/Neeto7/neetocafebackoffice/models"
)

// GetCart returns the cashier's current cart with its recomputed total.
func (ctl *Controller) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, total := ctl.Carts.Snapshot(userID)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// AddCartItem puts one unit of a menu item into the cart. The unit price is
// snapshotted here, so later menu edits do not touch carts in progress.
func (ctl *Controller) AddCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		MenuItemID uint `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := ctl.DB.First(&item, input.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item is not available"})
		return
	}

	ctl.Carts.With(userID, func(crt *cart.Cart) {
		crt.Add(item.ID, item.Name, item.Price)
	})

	items, total := ctl.Carts.Snapshot(userID)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// RemoveCartItem takes one unit out; the entry is evicted when it hits zero.
func (ctl *Controller) RemoveCartItem(c *gin.Context) {
	ctl.mutateCartItem(c, func(crt *cart.Cart, id uint) { crt.Remove(id) })
}

// RemoveCartItemAll evicts the entry regardless of quantity.
func (ctl *Controller) RemoveCartItemAll(c *gin.Context) {
	ctl.mutateCartItem(c, func(crt *cart.Cart, id uint) { crt.RemoveAll(id) })
}

// ClearCart empties the cashier's cart.
func (ctl *Controller) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctl.Carts.Clear(userID)
	c.JSON(http.StatusOK, gin.H{"items": []cart.Entry{}, "total": 0})
}

func (ctl *Controller) mutateCartItem(c *gin.Context, fn func(*cart.Cart, uint)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	ctl.Carts.With(userID, func(crt *cart.Cart) { fn(crt, uint(id)) })

	items, total := ctl.Carts.Snapshot(userID)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}
