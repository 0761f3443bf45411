package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Neeto7/neetocafebackoffice/controllers"
	"github.com/Neeto7/neetocafebackoffice/middleware"
)

func SetupRoutes(router *gin.Engine, ctl *controllers.Controller) {
	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.Authentication(ctl.Cfg.JWTSecret))
	{
		protected.POST("/auth/logout", ctl.Logout)
		protected.GET("/session", ctl.VerifySession)
		protected.GET("/ws", ctl.StreamChanges)

		protected.GET("/menu", ctl.GetMenu)

		profile := protected.Group("/profile")
		{
			profile.GET("", ctl.GetProfile)
			profile.PUT("", ctl.UpdateProfile)
			profile.POST("/avatar", ctl.UploadAvatar)
		}

		cart := protected.Group("/cart")
		{
			cart.GET("", ctl.GetCart)
			cart.DELETE("", ctl.ClearCart)
			cart.POST("/items", ctl.AddCartItem)
			cart.DELETE("/items/:id", ctl.RemoveCartItem)
			cart.DELETE("/items/:id/all", ctl.RemoveCartItemAll)
		}

		orders := protected.Group("/orders")
		{
			orders.POST("", ctl.SubmitOrder)
			orders.GET("/active", ctl.GetActiveOrders)
			orders.POST("/:id/complete", ctl.CompleteOrder)
			orders.GET("/history", ctl.GetOrderHistory)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/users", ctl.GetCashiers)
			admin.POST("/users", ctl.CreateCashier)
			admin.PUT("/users/:id", ctl.UpdateUser)
			admin.DELETE("/users/:id", ctl.DeleteUser)

			admin.POST("/menu", ctl.CreateMenuItem)
			admin.PUT("/menu/:slug", ctl.UpdateMenuItem)
			admin.DELETE("/menu/:slug", ctl.DeleteMenuItem)

			admin.POST("/upload", ctl.UploadImage)
			admin.POST("/expenses", ctl.CreateExpense)

			admin.GET("/reports", ctl.GetReport)
			admin.GET("/reports/export/excel", ctl.ExportReportExcel)
			admin.GET("/reports/export/pdf", ctl.ExportReportPDF)
		}
	}
}
