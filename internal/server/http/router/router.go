package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/handlers"
	"github.com/oshxona/resto/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RestoFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reservationHandler := handlers.NewReservationHandler(facade)
	boardHandler := handlers.NewBoardHandler(facade)

	api := engine.Group("/api")

	api.GET("/menu", menuHandler.PublicMenu)
	api.GET("/categories", menuHandler.Categories)

	api.GET("/cart", cartHandler.Get)
	api.POST("/cart/items", cartHandler.Add)
	api.PATCH("/cart/items/:id", cartHandler.ChangeQuantity)
	api.DELETE("/cart/items/:id", cartHandler.Remove)
	api.DELETE("/cart", cartHandler.Clear)

	api.POST("/delivery/quote", orderHandler.Quote)
	api.POST("/orders", orderHandler.Checkout)
	api.GET("/orders/:number", orderHandler.Track)

	api.GET("/tables", reservationHandler.Tables)
	api.POST("/reservations", reservationHandler.Book)

	staff := api.Group("/staff")
	staff.POST("/login", authHandler.Login)

	authed := staff.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/board", boardHandler.Snapshot)
	authed.GET("/events", boardHandler.Events)
	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders/:id/advance", orderHandler.Advance)
	authed.GET("/reservations", reservationHandler.List)
	authed.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
	authed.GET("/menu", menuHandler.FullMenu)

	admin := authed.Group("")
	admin.Use(middleware.RoleRequired(model.RoleAdmin))
	admin.POST("/users", authHandler.CreateStaff)
	admin.POST("/menu", menuHandler.CreateItem)
	admin.PUT("/menu/:id", menuHandler.UpdateItem)
	admin.DELETE("/menu/:id", menuHandler.DeleteItem)
	admin.POST("/categories", menuHandler.CreateCategory)
	admin.PUT("/categories/:id", menuHandler.UpdateCategory)
	admin.DELETE("/categories/:id", menuHandler.DeleteCategory)

	return engine
}
