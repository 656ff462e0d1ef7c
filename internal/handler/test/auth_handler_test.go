package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func TestLoginHandler(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	t.Run("Успішний вхід встановлює куку", func(t *testing.T) {
		rr := postLogin(t, router, "admin", "admin123")
		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Success bool `json:"success"`
			Admin   struct {
				Username string `json:"username"`
				Email    string `json:"email"`
			} `json:"admin"`
		}
		decodeJSON(t, rr, &response)
		assert.True(t, response.Success)
		assert.Equal(t, "admin", response.Admin.Username)

		// хеш пароля не витікає назовні
		assert.NotContains(t, rr.Body.String(), "password")

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_id", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("Невірний пароль - 401", func(t *testing.T) {
		rr := postLogin(t, router, "admin", "wrong")
		require.Equal(t, http.StatusUnauthorized, rr.Code)

		var response map[string]interface{}
		decodeJSON(t, rr, &response)
		assert.Equal(t, "Невірні дані для входу", response["message"])
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("Невідомий користувач - та сама відповідь що й невірний пароль", func(t *testing.T) {
		rr := postLogin(t, router, "ghost", "admin123")
		require.Equal(t, http.StatusUnauthorized, rr.Code)

		var response map[string]interface{}
		decodeJSON(t, rr, &response)
		assert.Equal(t, "Невірні дані для входу", response["message"])
	})

	t.Run("Порожні поля - порушення валідації", func(t *testing.T) {
		rr := postLogin(t, router, "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCheckHandler(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	t.Run("Без куки - не автентифікований", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Authenticated bool `json:"authenticated"`
		}
		decodeJSON(t, rr, &response)
		assert.False(t, response.Authenticated)
	})

	t.Run("З активною сесією - автентифікований", func(t *testing.T) {
		cookie := loginAdmin(t, router)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Authenticated bool `json:"authenticated"`
			Admin         struct {
				Username string `json:"username"`
			} `json:"admin"`
		}
		decodeJSON(t, rr, &response)
		assert.True(t, response.Authenticated)
		assert.Equal(t, "admin", response.Admin.Username)
	})

	t.Run("Вигадана кука - не автентифікований, без помилки", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "fake-session"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Authenticated bool `json:"authenticated"`
		}
		decodeJSON(t, rr, &response)
		assert.False(t, response.Authenticated)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	cookie := loginAdmin(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	// кука очищується
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	// сесія справді знищена
	checkReq := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	checkReq.AddCookie(cookie)
	checkRR := httptest.NewRecorder()
	router.ServeHTTP(checkRR, checkReq)

	var response struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeJSON(t, checkRR, &response)
	assert.False(t, response.Authenticated)
}

func TestRequireAdmin(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	t.Run("Без сесії - 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)

		var response map[string]interface{}
		decodeJSON(t, rr, &response)
		assert.Equal(t, "Потрібна авторизація", response["message"])
	})

	t.Run("З сесією - доступ дозволено", func(t *testing.T) {
		cookie := loginAdmin(t, router)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
