package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrekk1688/shop-api/internal/models"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"name":  "test_name",
		"price": 9.99,
	}

	rec, _, c := env.doJSONRequest(http.MethodPost, "/products", payload)
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "test_name", resp.Name)
	require.Equal(t, 9.99, resp.Price)
}

func TestCreateProductInvalid(t *testing.T) {
	env := newTestEnv(t)

	cases := []map[string]any{
		{"price": 9.99},
		{"name": "test_name"},
		{"name": "test_name", "price": 0},
		{"name": "", "price": 9.99},
	}

	for _, payload := range cases {
		rec, _, c := env.doJSONRequest(http.MethodPost, "/products", payload)
		require.NoError(t, env.P.CreateProduct(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Invalid request", resp["error"])
	}

	var count int64
	env.DB.Model(&models.Product{}).Count(&count)
	require.Zero(t, count)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	product := models.Product{ID: "test-id", Name: "test_name", Price: 1}
	require.NoError(t, env.DB.Create(&product).Error)

	rec, _, c := env.doJSONRequest(http.MethodGet, "/products/test-id", nil)
	c.SetParamNames("id")
	c.SetParamValues("test-id")
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, product.ID, resp.ID)
	require.Equal(t, product.Name, resp.Name)
	require.Equal(t, product.Price, resp.Price)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, _, c := env.doJSONRequest(http.MethodGet, "/products/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product not found", resp["error"])
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Product{ID: "a", Name: "first", Price: 1}).Error)
	require.NoError(t, env.DB.Create(&models.Product{ID: "b", Name: "second", Price: 2}).Error)

	rec, _, c := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "first", resp[0].Name)
	require.Equal(t, "second", resp[1].Name)
}

func TestGetProductsStorageFailure(t *testing.T) {
	env := newTestEnv(t)

	sqlDB, err := env.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec, _, c := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// product routes hide the underlying error behind a fixed message
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Internal server error", resp["error"])
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Product{ID: "test-id", Name: "test_name", Price: 1}).Error)

	rec, _, c := env.doJSONRequest(http.MethodDelete, "/products/test-id", nil)
	c.SetParamNames("id")
	c.SetParamValues("test-id")
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product deleted successfully", resp["message"])

	var count int64
	env.DB.Model(&models.Product{}).Count(&count)
	require.Zero(t, count)
}

func TestDeleteProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, _, c := env.doJSONRequest(http.MethodDelete, "/products/missing", nil)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Product not found", resp["error"])
}
