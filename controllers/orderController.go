package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Neeto7/neetocafebackoffice/aggregate"
	"github.com/Neeto7/neetocafebackoffice/models"
	"github.com/Neeto7/neetocafebackoffice/realtime"
)

var tableNumberPattern = regexp.MustCompile(`^\d+$`)

// SubmitOrder turns the cashier's cart into an order plus its items, inside
// one transaction. The cart is cleared only after the commit; any failure
// leaves it untouched so the cashier can retry.
func (ctl *Controller) SubmitOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		TableNumber  string `json:"table_number" binding:"required"`
		CustomerName string `json:"customer_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !tableNumberPattern.MatchString(input.TableNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table number must contain digits only"})
		return
	}

	items, total := ctl.Carts.Snapshot(userID)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	order := models.Order{
		TableNumber:  input.TableNumber,
		CustomerName: input.CustomerName,
		TotalPrice:   total,
		Status:       models.OrderStatusPending,
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, entry := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: entry.MenuItemID,
				Name:       entry.Name,
				Price:      entry.Price,
				Qty:        entry.Qty,
			})
		}
		return tx.Create(&orderItems).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	ctl.Carts.Clear(userID)
	ctl.Hub.Publish("orders", realtime.EventInsert)
	ctl.Hub.Publish("order_items", realtime.EventInsert)

	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

// GetActiveOrders returns every non-completed order with its items, newest
// first.
func (ctl *Controller) GetActiveOrders(c *gin.Context) {
	var orders []models.Order
	if err := ctl.DB.Where("status <> ?", models.OrderStatusCompleted).
		Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var items []models.OrderItem
	if len(orders) > 0 {
		ids := make([]uint, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		if err := ctl.DB.Where("order_id IN ?", ids).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": aggregate.GroupOrders(orders, items)})
}

// CompleteOrder moves an order into history: one history row per item, then
// the items and the order are deleted. The whole sequence runs in a single
// transaction and the history insert upserts on order_item_id, so a retried
// or concurrent completion cannot double-write history.
func (ctl *Controller) CompleteOrder(c *gin.Context) {
	id := c.Param("id")

	var order models.Order
	if err := ctl.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var items []models.OrderItem
	if err := ctl.DB.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	finishedAt := time.Now()
	history := make([]models.OrderHistory, 0, len(items))
	for _, item := range items {
		history = append(history, models.OrderHistory{
			OrderID:      order.ID,
			OrderItemID:  item.ID,
			CustomerName: order.CustomerName,
			TableNumber:  order.TableNumber,
			MenuItemID:   item.MenuItemID,
			MenuName:     item.Name,
			Price:        item.Price,
			Qty:          item.Qty,
			Subtotal:     item.Price * float64(item.Qty),
			Status:       models.OrderStatusCompleted,
			FinishedAt:   finishedAt,
		})
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if len(history) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "order_item_id"}},
				DoNothing: true,
			}).Create(&history).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move order to history"})
		return
	}

	ctl.Hub.Publish("order_history", realtime.EventInsert)
	ctl.Hub.Publish("order_items", realtime.EventDelete)
	ctl.Hub.Publish("orders", realtime.EventDelete)

	c.JSON(http.StatusOK, gin.H{"message": "Order completed"})
}

// GetOrderHistory returns completed orders rebuilt from the history rows,
// most recently finished first.
func (ctl *Controller) GetOrderHistory(c *gin.Context) {
	var rows []models.OrderHistory
	if err := ctl.DB.Order("finished_at desc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": aggregate.GroupHistory(rows)})
}
