package routes

import (
	"teapos/controllers"
	"teapos/handlers"
	"teapos/middleware"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.POST("/api/users/register", controllers.Register)
	router.POST("/api/users/login", controllers.Login)
	router.POST("/api/users/logout", controllers.Logout)
	router.GET("/api/items", controllers.GetAllItems)
	router.GET("/api/items/:id", controllers.GetItem)
	router.GET("/api/categories", controllers.GetAllCategories)
	router.GET("/api/invoices/:token", controllers.GetInvoiceByToken)

	cart := router.Group("/api/cart")
	cart.Use(middleware.AuthMiddleware("customer"))
	{
		cart.GET("", handlers.GetCart)
		cart.POST("/items", handlers.AddCartItem)
		cart.PUT("/items/:itemId", handlers.SetCartItemQuantity)
		cart.DELETE("/items/:itemId", handlers.RemoveCartItem)
		cart.DELETE("", handlers.ClearCart)
		cart.POST("/checkout", handlers.Checkout)
	}

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware("admin"))
	{
		admin.POST("/items", controllers.CreateItem)
		admin.PUT("/items/:id", controllers.EditItem)
		admin.DELETE("/items/:id", controllers.DeleteItem)

		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.EditCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		admin.POST("/bills", controllers.CreateBill)
		admin.GET("/bills", controllers.GetAllBills)
		admin.GET("/bills/:id", controllers.GetBillByID)
		admin.GET("/bills/:id/invoice", controllers.GetInvoice)

		admin.GET("/reports/daily", controllers.DailySalesReport)
		admin.GET("/reports/monthly", controllers.MonthlySalesReport)
	}
}
