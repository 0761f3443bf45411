package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Neeto7/neetocafebackoffice/cart"
	"github.com/Neeto7/neetocafebackoffice/config"
	"github.com/Neeto7/neetocafebackoffice/realtime"
	"github.com/Neeto7/neetocafebackoffice/storage"
)

// Controller carries the injected handles every handler needs. Nothing here
// is a package global; main constructs one and wires it into the routes.
type Controller struct {
	DB    *gorm.DB
	Hub   *realtime.Hub
	Store *storage.Store
	Carts *cart.Registry
	Cfg   *config.Config
}

func New(db *gorm.DB, hub *realtime.Hub, store *storage.Store, cfg *config.Config) *Controller {
	return &Controller{
		DB:    db,
		Hub:   hub,
		Store: store,
		Carts: cart.NewRegistry(),
		Cfg:   cfg,
	}
}

// currentUserID pulls the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID.(uint), true
}
