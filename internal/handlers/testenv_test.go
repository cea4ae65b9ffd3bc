package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/piotrekk1688/shop-api/internal/hash"
	"github.com/piotrekk1688/shop-api/internal/logging"
	"github.com/piotrekk1688/shop-api/internal/models"
	"github.com/piotrekk1688/shop-api/internal/repo"
	"github.com/piotrekk1688/shop-api/internal/service/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	U      *UserHandler
	P      *ProductHandler
	DB     *gorm.DB
	Tokens *token.Service
}

func newTestEnv(t *testing.T) *testEnv {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	tokens := &token.Service{Secret: []byte("test_secret")}
	store := repo.New(db)
	logger := logging.New("error")

	env := &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Tokens: tokens,
	}

	env.U = &UserHandler{Repo: store, Tokens: tokens, Log: logger}
	env.P = &ProductHandler{Repo: store, Log: logger}

	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users")
		env.DB.Exec("DELETE FROM products")
		sqlDB.Close()
	})

	return env
}

func (env *testEnv) doJSONRequest(method, target string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	env.T.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(env.T, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, req, c
}

func (env *testEnv) createUser(email, name, password string, admin bool) models.User {
	env.T.Helper()

	digest, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: digest,
		IsAdmin:      admin,
	}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}
