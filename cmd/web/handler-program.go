package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mlahtinen/liftplan/internal/contexthelpers"
	"github.com/mlahtinen/liftplan/internal/program"
)

type programTemplateData struct {
	BaseTemplateData
	HasProgram bool
	Program    program.Program
}

// programGET shows the active training program, or an empty state prompting to generate one.
func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := contexthelpers.CurrentProfileID(ctx)

	data := programTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		HasProgram:       false,
		Program:          program.Program{},
	}

	active, err := app.programService.ActiveProgram(ctx, profileID)
	switch {
	case err == nil:
		data.HasProgram = true
		data.Program = active
	case errors.Is(err, program.ErrNotFound):
		// No program yet, show the empty state.
	default:
		app.serverError(w, r, fmt.Errorf("active program: %w", err))
		return
	}

	app.render(w, r, http.StatusOK, "program", data)
}

// programGeneratePOST generates a fresh program for the profile and activates it.
func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.CurrentProfileID(r.Context())
	if _, err := app.programService.GenerateProgram(r.Context(), profileID); err != nil {
		app.serverError(w, r, fmt.Errorf("generate program: %w", err))
		return
	}

	redirect(w, r, "/program")
}

// programRegeneratePOST replaces the active program, steering selection away from
// the exercises of the prior program for variety.
func (app *application) programRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	profileID := contexthelpers.CurrentProfileID(r.Context())
	if _, err := app.programService.RegenerateProgram(r.Context(), profileID); err != nil {
		app.serverError(w, r, fmt.Errorf("regenerate program: %w", err))
		return
	}

	redirect(w, r, "/program")
}
