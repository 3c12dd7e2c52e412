package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mlahtinen/liftplan/internal/contexthelpers"
	"github.com/mlahtinen/liftplan/internal/program"
)

const (
	FortyFiveMinutes      = 45
	OneHourMinutes        = 60
	OneAndHalfHourMinutes = 90
	TwoHourMinutes        = 120
)

type sessionDurationOption struct {
	Value int    // Minutes value
	Label string // Display label
}

type preferencesTemplateData struct {
	BaseTemplateData
	Preferences     program.Preferences
	DayOptions      []int
	DurationOptions []sessionDurationOption
	Equipment       []program.Equipment
	Conditions      []program.HealthCondition
	BodyZones       []program.BodyZone
}

func getSessionDurationOptions() []sessionDurationOption {
	return []sessionDurationOption{
		{Value: FortyFiveMinutes, Label: "45 minutes"},
		{Value: OneHourMinutes, Label: "1 hour"},
		{Value: OneAndHalfHourMinutes, Label: "1.5 hours"},
		{Value: TwoHourMinutes, Label: "2 hours"},
	}
}

func bodyZoneOptions() []program.BodyZone {
	return []program.BodyZone{
		program.ZoneKnee,
		program.ZoneShoulder,
		program.ZoneElbow,
		program.ZoneWrist,
		program.ZoneAnkle,
		program.ZoneHip,
		program.ZoneNeck,
		program.ZoneUpperBack,
		program.ZoneLowerBack,
		program.ZoneOther,
	}
}

func (app *application) preferencesGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := contexthelpers.CurrentProfileID(ctx)

	profile, err := app.programService.GetProfile(ctx, profileID)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get profile: %w", err))
		return
	}

	equipment, err := app.programService.ListEquipment(ctx, profileID)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list equipment: %w", err))
		return
	}

	conditions, err := app.programService.ListConditions(ctx, profileID)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list conditions: %w", err))
		return
	}

	data := preferencesTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Preferences:      profile.Preferences,
		DayOptions:       []int{1, 2, 3, 4, 5, 6, 7},
		DurationOptions:  getSessionDurationOptions(),
		Equipment:        equipment,
		Conditions:       conditions,
		BodyZones:        bodyZoneOptions(),
	}

	app.render(w, r, http.StatusOK, "preferences", data)
}

func (app *application) preferencesPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	daysPerWeek, err := strconv.Atoi(r.Form.Get("days_per_week"))
	if err != nil {
		http.Error(w, "Invalid training days", http.StatusUnprocessableEntity)
		return
	}
	minutesPerSession, err := strconv.Atoi(r.Form.Get("minutes_per_session"))
	if err != nil {
		http.Error(w, "Invalid session duration", http.StatusUnprocessableEntity)
		return
	}

	prefs := program.Preferences{
		DaysPerWeek:       daysPerWeek,
		MinutesPerSession: minutesPerSession,
	}
	profileID := contexthelpers.CurrentProfileID(r.Context())
	if err = app.programService.SavePreferences(r.Context(), profileID, prefs); err != nil {
		http.Error(w, "Invalid schedule", http.StatusUnprocessableEntity)
		return
	}

	redirect(w, r, "/preferences")
}

// equipmentPOST adds, toggles, or removes one equipment entry of the profile.
func (app *application) equipmentPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	profileID := contexthelpers.CurrentProfileID(r.Context())
	name := strings.TrimSpace(r.Form.Get("name"))
	if name == "" {
		http.Error(w, "Equipment name is required", http.StatusUnprocessableEntity)
		return
	}

	if r.Form.Get("remove") == "true" {
		if err := app.programService.RemoveEquipment(r.Context(), profileID, name); err != nil {
			app.serverError(w, r, fmt.Errorf("remove equipment: %w", err))
			return
		}
		redirect(w, r, "/preferences")
		return
	}

	eq := program.Equipment{
		Name:      name,
		Available: r.Form.Get("available") == "true",
	}
	if err := app.programService.SetEquipment(r.Context(), profileID, eq); err != nil {
		app.serverError(w, r, fmt.Errorf("set equipment: %w", err))
		return
	}

	redirect(w, r, "/preferences")
}

// conditionPOST creates or updates one health condition of the profile.
func (app *application) conditionPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	painLevel, err := strconv.Atoi(r.Form.Get("pain_level"))
	if err != nil {
		http.Error(w, "Invalid pain level", http.StatusUnprocessableEntity)
		return
	}

	condition := program.HealthCondition{
		ID:        0,
		BodyZone:  program.BodyZone(r.Form.Get("body_zone")),
		Diagnosis: strings.TrimSpace(r.Form.Get("diagnosis")),
		Notes:     strings.TrimSpace(r.Form.Get("notes")),
		PainLevel: painLevel,
		Active:    r.Form.Get("active") == "true",
	}
	if idStr := r.Form.Get("id"); idStr != "" {
		if condition.ID, err = strconv.Atoi(idStr); err != nil {
			http.Error(w, "Invalid condition", http.StatusUnprocessableEntity)
			return
		}
	}

	profileID := contexthelpers.CurrentProfileID(r.Context())
	if err = app.programService.SaveCondition(r.Context(), profileID, condition); err != nil {
		http.Error(w, "Invalid condition", http.StatusUnprocessableEntity)
		return
	}

	redirect(w, r, "/preferences")
}
