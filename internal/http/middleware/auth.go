package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/medicine-inventory/internal/http/response"
)

// Auth requires a bearer token signed with secret (HS256). Expired or
// malformed tokens get 401.
func Auth(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				response.Error(w, nil, response.Unauthorized("missing or invalid token"))
				return
			}

			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			token, err := parser.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				response.Error(w, nil, response.Unauthorized("invalid token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
