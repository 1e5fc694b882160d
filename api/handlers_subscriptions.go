package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nine-hub/api/datastore"
	"github.com/nine-hub/api/models"
	"github.com/nine-hub/api/webhook"
)

// POST /v1/waitlist
func (app *Application) joinWaitlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.EmailCaptureRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}

	entry := models.NewWaitlistEmail(*req)
	_, err := app.WaitlistRepo.Create(r.Context(), entry)
	if errors.Is(err, datastore.ErrAlreadyExists) {
		writeJSON(w, http.StatusOK, models.EmailCaptureResponse{
			Message:           "Already on the list!",
			AlreadyRegistered: true,
		})
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.Logger.Info("waitlist signup", zap.String("source", entry.Source))
	writeJSON(w, http.StatusCreated, models.EmailCaptureResponse{Message: "You're on the list!"})
}

// POST /v1/newsletter
func (app *Application) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.EmailCaptureRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}

	if err := app.Newsletter.Subscribe(r.Context(), models.NormalizeEmail(req.Email), req.Source); err != nil {
		app.upstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.EmailCaptureResponse{
		Message: "Thanks for subscribing!",
		Demo:    app.Newsletter.Demo(),
	})
}

// GET /v1/subscriptions/status?email=
func (app *Application) getSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	email := models.NormalizeEmail(r.URL.Query().Get("email"))
	if err := app.validate.Var(email, "required,email"); err != nil {
		app.badRequest(w, r, fmt.Errorf("a valid email query parameter is required"))
		return
	}

	resp := models.SubscriptionStatusResponse{Email: email}
	sub, err := app.SubscriptionRepo.GetByEmail(r.Context(), email)
	var noRows datastore.NoRowsError
	if errors.As(err, &noRows) {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp.IsPro = sub.IsPro(app.now())
	resp.PlanType = sub.PlanType
	resp.Status = sub.Status
	resp.CurrentPeriodEnd = sub.CurrentPeriodEnd
	writeJSON(w, http.StatusOK, resp)
}

// POST /v1/webhooks/fastspring
func (app *Application) fastspringWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		app.payloadTooLarge(w, r, err)
		return
	}
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	switch err := webhook.VerifySignature(app.Config.WebhookSecret, body, r.Header.Get(webhook.SignatureHeader)); {
	case errors.Is(err, webhook.ErrMissingSignature):
		app.invalidSignature(w, r, "Missing signature")
		return
	case err != nil:
		app.invalidSignature(w, r, "Invalid signature")
		return
	}

	events, err := webhook.ParseEvents(body)
	if err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	outcomes := app.Webhooks.Process(r.Context(), events)
	failed := 0
	for _, o := range outcomes {
		if o.Result == webhook.Failed {
			failed++
		}
	}
	app.Logger.Info("webhook processed", zap.Int("events", len(events)), zap.Int("failed", failed))

	writeJSON(w, http.StatusOK, models.WebhookResponse{Success: true})
}

// POST /v1/auth/token exchanges the admin key for a short-lived JWT
func (app *Application) issueAdminToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.AdminTokenRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}

	if app.Config.AdminKeyHash == "" {
		app.invalidCredentials(w, r, errors.New("admin access is not configured"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(app.Config.AdminKeyHash), []byte(req.Key)); err != nil {
		app.invalidCredentials(w, r, errors.New("invalid admin key"))
		return
	}

	ttl := time.Duration(app.Config.JwtAccessDuration) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	tok, err := models.NewAccessToken(app.Config.JwtSecret, app.Config.JwtDomain, ttl, app.now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     models.AccessCookieName,
		Value:    tok.Token,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  tok.Expiry,
	})

	writeJSON(w, http.StatusOK, tok)
}

// GET /v1/admin/subscriptions
func (app *Application) getAllSubscriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	subs, err := app.SubscriptionRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// POST /v1/admin/subscriptions/expire
func (app *Application) expireSubscriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	n, err := app.Expiry.ExpireLapsed(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"expired": n})
}

// GET /v1/admin/waitlist
func (app *Application) getWaitlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			app.badRequest(w, r, fmt.Errorf("limit must be a positive integer"))
			return
		}
		limit = n
	}

	total, err := app.WaitlistRepo.Count(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	entries, err := app.WaitlistRepo.GetAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	// entries come newest first
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   total,
		"entries": entries,
	})
}
