package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neeto7/neetocafebackoffice/models"
	"github.com/Neeto7/neetocafebackoffice/realtime"
)

// CreateExpense records a free-standing expense. Rejected before any store
// call when the description is missing or the amount is not a positive
// number.
func (ctl *Controller) CreateExpense(c *gin.Context) {
	var input struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := models.Expense{
		Description: input.Description,
		Amount:      input.Amount,
	}
	if err := ctl.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctl.Hub.Publish("expenses", realtime.EventInsert)
	c.JSON(http.StatusCreated, gin.H{"message": "Expense recorded", "expense": expense})
}
