package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-search/internal/handlers"
	"product-search/internal/middleware"
)

// Dependencies agrupa lo que necesitan los handlers.
// Recorder y Analytics son nil cuando no hay base de datos configurada.
type Dependencies struct {
	Search    handlers.Searcher
	Recorder  handlers.SearchRecorder
	Analytics handlers.Analytics
}

// NewRouter crea el engine con middlewares y rutas registradas
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	RegisterRoutes(router, deps)
	return router
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	products := handlers.NewProductHandler(deps.Search, deps.Recorder)
	tracking := handlers.NewTrackingHandler(deps.Recorder, deps.Analytics)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/productos", products.ListProducts)
		api.GET("/productos/buscar", products.SearchProducts)
		api.GET("/productos/categoria/:categoria", products.GetByCategory)
		api.GET("/categorias", products.ListCategories)
		api.GET("/precios", products.ListPriceRanges)

		api.POST("/busquedas/:id/click", tracking.RecordClick)

		api.GET("/analytics/terminos", tracking.TopTerms)
		api.GET("/analytics/productos", tracking.TopProducts)
		api.GET("/analytics/tendencias", tracking.Trends)
	}
}
