package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/panjuncai/Sola-sub000/pkg/ctxutil"
)

// Language returns middleware that stores the client's most preferred
// language from Accept-Language in the context. Handlers use it when a
// request body does not name a language. Unparseable headers are ignored.
func Language() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Accept-Language")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			tags, _, err := language.ParseAcceptLanguage(header)
			if err != nil || len(tags) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			base, _ := tags[0].Base()
			ctx := ctxutil.WithLanguage(r.Context(), base.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
