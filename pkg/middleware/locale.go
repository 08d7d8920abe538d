package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/i18n"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// LocaleKey is the context key for the negotiated display language
	LocaleKey ContextKey = "locale"
)

// Locale negotiates the display language for each request. A "lang" query
// parameter wins over the Accept-Language header; anything unsupported falls
// back to the given default.
func Locale(fallback language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			preference := r.URL.Query().Get("lang")
			if preference == "" {
				preference = r.Header.Get("Accept-Language")
			}
			tag := i18n.Match(preference, fallback)

			w.Header().Set("Content-Language", tag.String())
			ctx := context.WithValue(r.Context(), LocaleKey, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale extracts the negotiated language from the request context
func GetLocale(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(LocaleKey).(language.Tag)
	return tag, ok
}
