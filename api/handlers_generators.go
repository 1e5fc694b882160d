package api

import (
	"net/http"

	"github.com/nine-hub/api/generators"
)

// POST /v1/generators/glass
func (app *Application) generateGlass(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	cfg := generators.DefaultGlass()
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.Glass(cfg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/generators/shadow
func (app *Application) generateShadow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	cfg := generators.DefaultShadow()
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.Shadow(cfg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/generators/gradient
func (app *Application) generateGradientText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	var cfg generators.GradientTextConfig
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.GradientText(cfg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/generators/blob
func (app *Application) generateBlob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	cfg := generators.DefaultBlob()
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.Blob(cfg, app.newRand())
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
