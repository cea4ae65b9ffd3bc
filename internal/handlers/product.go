package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/piotrekk1688/shop-api/internal/models"
	"github.com/piotrekk1688/shop-api/internal/mykafka"
	"github.com/piotrekk1688/shop-api/internal/repo"
	"github.com/piotrekk1688/shop-api/internal/service/search"
	"github.com/piotrekk1688/shop-api/internal/transport"
)

const internalServerError = "Internal server error"

type ProductHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
	Log      *slog.Logger
}

func (h *ProductHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", key, event); err != nil {
		h.Log.Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) indexProduct(c echo.Context, product *models.Product) {
	if h.ES == nil {
		return
	}
	if err := search.IndexProduct(c.Request().Context(), h.ES, h.Index, product); err != nil {
		h.Log.Error("failed to index product", "id", product.ID, "error", err)
	}
}

func (h *ProductHandler) removeFromIndex(c echo.Context, id string) {
	if h.ES == nil {
		return
	}
	if err := search.RemoveProduct(c.Request().Context(), h.ES, h.Index, id); err != nil {
		h.Log.Error("failed to remove product from index", "id", id, "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Repo.GetProducts(ctx)
	if err != nil {
		h.Log.Error("failed to get products", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internalServerError})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	product, err := h.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		h.Log.Error("failed to get product", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internalServerError})
	}

	// same 201-on-read contract as the user route
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}
	if err := transport.ValidateCreateProduct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
	}

	saved, err := h.Repo.CreateProduct(ctx, &product)
	if err != nil {
		h.Log.Error("failed to save product", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internalServerError})
	}

	h.publish(c, saved.ID, map[string]any{
		"type":      "product_created",
		"productID": saved.ID,
		"name":      saved.Name,
	})
	h.indexProduct(c, saved)

	return c.JSON(http.StatusCreated, saved)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		h.Log.Error("failed to delete product", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internalServerError})
	}

	h.publish(c, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	h.removeFromIndex(c, id)

	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
