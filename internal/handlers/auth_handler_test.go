package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Capryc0rne/CUBE/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupTest(t)

	t.Run("register creates a standard user", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/register", "", gin.H{
			"email":    "nouveau@cube.fr",
			"password": "motdepasse",
			"pseudo":   "nouveau",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.User
		require.NoError(t, db.Preload("Role").Where("email = ?", "nouveau@cube.fr").First(&user).Error)
		assert.Equal(t, models.RoleUtilisateur, user.Role.Name)
		assert.NotEqual(t, "motdepasse", user.Password)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/register", "", gin.H{
			"email":    "nouveau@cube.fr",
			"password": "autremotdepasse",
			"pseudo":   "clone",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login returns a usable token", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/login", "", gin.H{
			"email":    "nouveau@cube.fr",
			"password": "motdepasse",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		token, _ := body["token"].(string)
		require.NotEmpty(t, token)

		// Authenticated but not admin: the stats route must answer 401.
		stats := performRequest(r, http.MethodGet, "/stats/categories", token, nil)
		assert.Equal(t, http.StatusUnauthorized, stats.Code)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/login", "", gin.H{
			"email":    "nouveau@cube.fr",
			"password": "mauvais-mdp",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Identifiants invalides", decodeBody(t, w)["message"])
	})

	t.Run("malformed register body is a bad request", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/register", "", gin.H{
			"email": "pas-un-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListCountries(t *testing.T) {
	r, db := setupTest(t)

	for _, c := range []models.Country{
		{Name: "France", Code: "FR"},
		{Name: "Belgique", Code: "BE"},
	} {
		require.NoError(t, db.Create(&c).Error)
	}

	w := performRequest(r, http.MethodGet, "/countries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	countries := decodeBody(t, w)["countries"].([]interface{})
	require.Len(t, countries, 2)

	first := countries[0].(map[string]interface{})
	assert.Equal(t, "Belgique", first["name"])
	assert.Equal(t, "BE", first["code"])
}
