package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocale(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		fallback       language.Tag
		want           language.Tag
	}{
		{"no preference", "/", "", language.English, language.English},
		{"configured fallback", "/", "", language.Vietnamese, language.Vietnamese},
		{"header", "/", "vi-VN,vi;q=0.9", language.English, language.Vietnamese},
		{"query wins over header", "/?lang=en", "vi", language.Vietnamese, language.English},
		{"unsupported", "/", "de-DE", language.English, language.English},
		{"garbage header", "/", ";;;", language.English, language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got language.Tag
			var ok bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = GetLocale(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()
			Locale(tt.fallback)(next).ServeHTTP(rec, req)

			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), rec.Header().Get("Content-Language"))
		})
	}
}

func TestGetLocale_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetLocale(req.Context())
	assert.False(t, ok)
}
