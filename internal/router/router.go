package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Erictomm2002/Menu-Scanner/internal/export"
	"github.com/Erictomm2002/Menu-Scanner/internal/middleware"
	"github.com/Erictomm2002/Menu-Scanner/internal/scan"
)

// New assembles the HTTP surface. Handlers are injected so tests can build
// the same routing against fakes.
func New(scanHandler *scan.Handler, exportHandler *export.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/sessions", scanHandler.StartSession)

		// Stateless single-image extraction.
		api.POST("/extract", scanHandler.Extract)

		// Exports take the document in the request body and never touch
		// session state.
		api.POST("/export", exportHandler.ExportMenu)
		api.POST("/export/categories", exportHandler.ExportCategories)

		authed := api.Group("")
		authed.Use(middleware.SessionMiddleware())
		{
			authed.GET("/session", scanHandler.GetSession)
			authed.DELETE("/session", scanHandler.ResetSession)
			authed.PATCH("/session/step", scanHandler.UpdateStep)

			authed.POST("/menus", scanHandler.CreateMenu)

			menuGroup := authed.Group("/menu")
			{
				menuGroup.PATCH("/name", scanHandler.RenameRestaurant)

				menuGroup.POST("/categories", scanHandler.AddCategory)
				menuGroup.PATCH("/categories/:categoryID", scanHandler.RenameCategory)
				menuGroup.DELETE("/categories/:categoryID", scanHandler.DeleteCategory)

				menuGroup.POST("/categories/:categoryID/items", scanHandler.AddItem)
				menuGroup.PATCH("/categories/:categoryID/items/:itemID", scanHandler.UpdateItem)
				menuGroup.DELETE("/categories/:categoryID/items/:itemID", scanHandler.DeleteItem)
				menuGroup.POST("/categories/:categoryID/items/:itemID/move", scanHandler.MoveItem)
			}
		}
	}

	return r
}
