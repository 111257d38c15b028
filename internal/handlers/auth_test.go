package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orvela_back_end/internal/models"
	"orvela_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", Signup)
	r.POST("/login", Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignupCreatesUserWithFullCart(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	users := newFakeUserStore()
	swapStores(t, users, nil)
	r := newAuthRouter()

	w := postJSON(r, "/signup", `{"username":"lea","email":"lea@orvela.shop","password":"motdepasse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["token"])

	require.Len(t, users.inserted, 1)
	created := users.inserted[0]

	// panier complet dès l'inscription : 300 emplacements à zéro
	assert.Len(t, created.CartData, models.CartSlots)
	for _, qty := range created.CartData {
		assert.Equal(t, 0, qty)
	}

	// mot de passe jamais stocké en clair
	assert.NotEqual(t, "motdepasse", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "motdepasse"))

	// le token embarque l'id du nouvel utilisateur
	userID, err := utils.ParseToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, created.ID.Hex(), userID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	users := newFakeUserStore()
	users.seed(models.User{Email: "lea@orvela.shop"})
	swapStores(t, users, nil)
	r := newAuthRouter()

	w := postJSON(r, "/signup", `{"username":"lea","email":"lea@orvela.shop","password":"motdepasse"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already in use", body["error"])

	// aucun utilisateur créé
	assert.Empty(t, users.inserted)
}

func TestSignupStoreErrorCreatesNothing(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	users := newFakeUserStore()
	users.findErr = errors.New("délai dépassé")
	swapStores(t, users, nil)
	r := newAuthRouter()

	w := postJSON(r, "/signup", `{"username":"lea","email":"lea@orvela.shop","password":"motdepasse"}`)

	// une erreur de lecture ne vaut pas "email libre"
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, users.inserted)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	swapStores(t, newFakeUserStore(), nil)
	r := newAuthRouter()

	w := postJSON(r, "/login", `{"email":"inconnu@orvela.shop","password":"motdepasse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User email doesn't exists", body["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	users := newFakeUserStore()
	hash, err := utils.HashPassword("bonmotdepasse")
	require.NoError(t, err)
	users.seed(models.User{Email: "lea@orvela.shop", Password: hash})
	swapStores(t, users, nil)
	r := newAuthRouter()

	w := postJSON(r, "/login", `{"email":"lea@orvela.shop","password":"mauvais"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Wrong password", body["error"])
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit_test_secret")
	users := newFakeUserStore()
	hash, err := utils.HashPassword("bonmotdepasse")
	require.NoError(t, err)
	oid := users.seed(models.User{Email: "lea@orvela.shop", Password: hash})
	swapStores(t, users, nil)
	r := newAuthRouter()

	w := postJSON(r, "/login", `{"email":"lea@orvela.shop","password":"bonmotdepasse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	userID, err := utils.ParseToken(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), userID)
}
