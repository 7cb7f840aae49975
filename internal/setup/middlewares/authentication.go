package middlewares

import (
	"net/http"
	"strings"

	"github.com/pennyflow/finance-backend/internal/utils"
)

func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if cookie, err := r.Cookie("__Secure-next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else if cookie, err := r.Cookie("next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else {
			authorization = r.Header.Get("Authorization")
		}

		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := utils.NewAccessTokenUtil().DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", sub)

		next.ServeHTTP(w, r)
	})
}
