package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/piotrekk1688/shop-api/internal/service/search"
	"github.com/piotrekk1688/shop-api/internal/util"
)

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	if h.ES == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "search is not configured"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	ctx := c.Request().Context()

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		h.Log.Error("failed to search products", "query", q, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internalServerError})
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
