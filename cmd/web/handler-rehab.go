package main

import (
	"fmt"
	"net/http"

	"github.com/mlahtinen/liftplan/internal/contexthelpers"
	"github.com/mlahtinen/liftplan/internal/program"
	"github.com/mlahtinen/liftplan/internal/rehab"
)

// accentPainLevel is the pain threshold from which a condition's body zone gets
// reserved slots in the rehab rotation.
const accentPainLevel = 4

type rehabTemplateData struct {
	BaseTemplateData
	Exercises []program.Exercise
}

func (app *application) rehabSelector(profileID int) *rehab.Selector {
	return rehab.NewSelector(rehab.NewSQLiteHistory(app.db, profileID), app.logger)
}

// rehabCandidates returns the rehab entries of the catalog.
func (app *application) rehabCandidates(r *http.Request) ([]program.Exercise, error) {
	exercises, err := app.programService.ListExercises(r.Context())
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	var candidates []program.Exercise
	for _, ex := range exercises {
		if ex.Rehab {
			candidates = append(candidates, ex)
		}
	}
	return candidates, nil
}

// rehabGET shows today's rehab rotation for the profile. Zones of painful active
// conditions get reserved slots in the rotation.
func (app *application) rehabGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := contexthelpers.CurrentProfileID(ctx)

	candidates, err := app.rehabCandidates(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	conditions, err := app.programService.ListConditions(ctx, profileID)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list conditions: %w", err))
		return
	}
	var accentZones []program.BodyZone
	for _, c := range conditions {
		if c.Active && c.PainLevel >= accentPainLevel {
			accentZones = append(accentZones, c.BodyZone)
		}
	}

	selector := app.rehabSelector(profileID)
	selected := selector.SelectWithAccent(ctx, candidates, accentZones, rehab.DefaultRotationSize)

	data := rehabTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercises:        selected,
	}

	app.render(w, r, http.StatusOK, "rehab", data)
}

// rehabDonePOST records the checked rehab exercises as done, pushing them to the
// back of the next rotations.
func (app *application) rehabDonePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	profileID := contexthelpers.CurrentProfileID(r.Context())
	selector := app.rehabSelector(profileID)
	selector.RecordDone(r.Context(), r.Form["done"])

	redirect(w, r, "/rehab")
}
