package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/piotrekk1688/shop-api/internal/handlers"
	"github.com/piotrekk1688/shop-api/internal/middleware/auth"
	"github.com/piotrekk1688/shop-api/internal/service/token"
)

type Deps struct {
	UserHandler    *handlers.UserHandler
	ProductHandler *handlers.ProductHandler
	Tokens         *token.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	adminOnly := auth.AdminOnly(d.Tokens)

	users := e.Group("/users")

	users.GET("", d.UserHandler.GetUsers)
	users.GET("/login/:email", d.UserHandler.Login)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser, adminOnly)

	products := e.Group("/products")

	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, adminOnly)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, adminOnly)
}
