package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/snackstore/application/user"
	"github.com/muhammadheryan/snackstore/constant"
	utilsContext "github.com/muhammadheryan/snackstore/utils/context"
	"github.com/muhammadheryan/snackstore/utils/errors"
)

var publicPrefixes = []string{"/swagger/", "/internal/", "/products", "/categories"}

var publicPaths = map[string]bool{
	"/login":            true,
	"/register":         true,
	"/metrics":          true,
	"/payment-methods":  true,
	"/schedule/options": true,
}

// AuthMiddleware resolves the bearer token to a merchant id and stores it in the
// request context. Catalog browsing and the back-office routes skip it.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

func isPublicPath(path string) bool {
	if publicPaths[path] {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
