package main

import (
	"errors"
	"net/http"

	"github.com/mlahtinen/liftplan/internal/contexthelpers"
	"github.com/mlahtinen/liftplan/internal/program"
)

type homeTemplateData struct {
	BaseTemplateData
	// Profiles lists every training profile on this installation.
	Profiles []program.Profile
	// CurrentProfile is the selected profile, zero value when none is selected.
	CurrentProfile program.Profile
	// HasProgram indicates whether the selected profile has an active program.
	HasProgram bool
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profiles, err := app.programService.ListProfiles(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Profiles:         profiles,
		CurrentProfile:   program.Profile{},
		HasProgram:       false,
	}

	if profileID := contexthelpers.CurrentProfileID(ctx); profileID != 0 {
		profile, err := app.programService.GetProfile(ctx, profileID)
		if err != nil {
			// The profile may have been deleted under the session. Fall back to the selection view.
			app.sessionManager.Remove(ctx, sessionKeyProfileID)
		} else {
			data.CurrentProfile = profile
			if _, err = app.programService.ActiveProgram(ctx, profileID); err == nil {
				data.HasProgram = true
			} else if !errors.Is(err, program.ErrNotFound) {
				app.serverError(w, r, err)
				return
			}
		}
	}

	app.render(w, r, http.StatusOK, "home", data)
}
