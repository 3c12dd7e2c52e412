package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// profileCreatePOST creates a new training profile and selects it for this session.
func (app *application) profileCreatePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	if name == "" {
		http.Error(w, "Profile name is required", http.StatusUnprocessableEntity)
		return
	}

	profile, err := app.programService.CreateProfile(r.Context(), name)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("create profile: %w", err))
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyProfileID, profile.ID)
	redirect(w, r, "/")
}

// profileSelectPOST switches the session to an existing profile.
func (app *application) profileSelectPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	profileID, err := strconv.Atoi(r.Form.Get("profile_id"))
	if err != nil {
		http.Error(w, "Invalid profile", http.StatusUnprocessableEntity)
		return
	}

	// Verify the profile exists before binding the session to it.
	if _, err = app.programService.GetProfile(r.Context(), profileID); err != nil {
		http.NotFound(w, r)
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyProfileID, profileID)
	redirect(w, r, "/")
}

// profileDeselectPOST returns the session to the profile selection view.
func (app *application) profileDeselectPOST(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Remove(r.Context(), sessionKeyProfileID)
	redirect(w, r, "/")
}
