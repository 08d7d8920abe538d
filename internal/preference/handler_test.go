package preference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/pkg/middleware"
)

type themeEnvelope struct {
	Success bool           `json:"success"`
	Data    *ThemeResponse `json:"data"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(NewService(newTestRepository(t), false))
	return middleware.Locale(language.English)(h.Routes())
}

func serve(t *testing.T, srv http.Handler, method, target, body string) (int, themeEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env themeEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestHandler_ThemeLifecycle(t *testing.T) {
	srv := newTestServer(t)

	status, env := serve(t, srv, http.MethodGet, "/theme", "")
	require.Equal(t, http.StatusOK, status)
	assert.False(t, env.Data.DarkMode)
	assert.Equal(t, ThemeLight, env.Data.Theme)
	assert.Equal(t, "Light mode", env.Data.Label)

	status, env = serve(t, srv, http.MethodPut, "/theme", `{"dark_mode": true}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Data.DarkMode)

	status, env = serve(t, srv, http.MethodGet, "/theme?lang=vi", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ThemeDark, env.Data.Theme)
	assert.Equal(t, "Chế độ tối", env.Data.Label)

	status, env = serve(t, srv, http.MethodPost, "/theme/toggle", "")
	require.Equal(t, http.StatusOK, status)
	assert.False(t, env.Data.DarkMode)

	status, env = serve(t, srv, http.MethodPut, "/theme", `{"theme": "dark"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Data.DarkMode)

	status, env = serve(t, srv, http.MethodDelete, "/theme", "")
	require.Equal(t, http.StatusOK, status)
	assert.False(t, env.Data.DarkMode, "reset falls back to the configured default")

	status, env = serve(t, srv, http.MethodGet, "/theme", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ThemeLight, env.Data.Theme)
}

func TestHandler_UpdateTheme_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{`not json`, `{}`, `{"theme": "sepia"}`} {
		t.Run(body, func(t *testing.T) {
			status, env := serve(t, srv, http.MethodPut, "/theme", body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
		})
	}
}
