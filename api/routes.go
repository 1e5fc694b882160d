package api

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if allowed == "*" || cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		// server-to-server callers such as the billing webhook send no origin
		if origin == "" {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		if isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		app.Logger.Warn("origin rejected", zap.String("origin", origin), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (app *Application) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		app.Logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/healthz", app.healthz)

	// Color tools
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/contrast", app.checkContrast)
	mux.HandleFunc("/v1/colors/contrast/fix", app.fixContrast)
	mux.HandleFunc("/v1/colors/shades", app.getShades)
	mux.HandleFunc("/v1/colors/simulate", app.simulateColorBlindness)
	mux.HandleFunc("/v1/palettes/generate", app.generatePalette)
	mux.HandleFunc("/v1/palettes/export", app.exportPalette)
	mux.HandleFunc("/v1/generators/glass", app.generateGlass)
	mux.HandleFunc("/v1/generators/shadow", app.generateShadow)
	mux.HandleFunc("/v1/generators/gradient", app.generateGradientText)
	mux.HandleFunc("/v1/generators/blob", app.generateBlob)
	mux.HandleFunc("/v1/generators/grid", app.generateGrid)
	mux.HandleFunc("/v1/generators/grid/presets", app.getGridPresets)
	mux.HandleFunc("/v1/generators/meta", app.generateMeta)
	mux.HandleFunc("/v1/prompts/analyze", app.analyzePrompt)
	mux.HandleFunc("/v1/prompts/build", app.buildPrompt)
	mux.HandleFunc("/v1/prompts/templates", app.getPromptTemplates)

	// Sign-ups and billing
	mux.HandleFunc("/v1/waitlist", app.joinWaitlist)
	mux.HandleFunc("/v1/newsletter", app.subscribeNewsletter)
	mux.HandleFunc("/v1/subscriptions/status", app.getSubscriptionStatus)
	mux.HandleFunc("/v1/webhooks/fastspring", app.fastspringWebhook)

	// Admin endpoints
	mux.HandleFunc("/v1/auth/token", app.issueAdminToken)
	mux.HandleFunc("/v1/admin/subscriptions", app.verifyPermissions(app.getAllSubscriptions))
	mux.HandleFunc("/v1/admin/subscriptions/expire", app.verifyPermissions(app.expireSubscriptions))
	mux.HandleFunc("/v1/admin/waitlist", app.verifyPermissions(app.getWaitlist))

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", app.logRequests(wrapMuxWithCorsAndOrigins(mux, app)))

	return finalMux
}
