package middleware

import (
	"fmt"
	"net/http"

	"github.com/ferdiebergado/rehistro/internal/pkg/message"
	"github.com/ferdiebergado/rehistro/internal/pkg/web"
)

// CheckContentType rejects mutating requests whose body is not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if contentType != web.MimeJSON {
			web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
