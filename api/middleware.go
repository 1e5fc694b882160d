package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nine-hub/api/models"
)

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-FS-Signature")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// bearerToken reads the Authorization header, falling back to the access cookie
func bearerToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return "", errors.New("malformed authorization header")
		}
		return token, nil
	}

	cookie, err := r.Cookie(models.AccessCookieName)
	if err != nil {
		return "", errors.New("no JWT cookie found")
	}
	return cookie.Value, nil
}

func (app *Application) claimsFromRequest(r *http.Request) (*models.JWTClaims, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}
	return models.ValidateJWTToken(token, app.Config.JwtSecret)
}

// Verify the caller holds an admin token
func (app *Application) verifyPermissions(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := app.claimsFromRequest(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		if claims.Scope != models.ScopeAdmin {
			app.forbidden(w, r, ErrInvalidPrivelege)
			return
		}

		h.ServeHTTP(w, r)
	}
}
