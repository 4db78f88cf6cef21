package routes

import (
	"net/http"
	"os"

	"github.com/capedev/shopcatalog-golang/internal/handlers"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware admits the browser frontend. The allowed origin defaults
// to the local Vite dev server and can be overridden with CORS_ORIGIN.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Browsers probe with an empty OPTIONS request first.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Product Routes ---
		api.GET("/products", h.GetAllProducts)
		api.GET("/products/:id", h.GetProductByID)
		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		// --- Category Routes ---
		api.GET("/categories", h.GetAllCategories)
		api.POST("/categories", h.CreateCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		// --- Dashboard ---
		api.GET("/dashboard", h.GetDashboardStats)
	}

	return router
}
