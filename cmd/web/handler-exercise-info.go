package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mlahtinen/liftplan/internal/program"
)

type exercisesTemplateData struct {
	BaseTemplateData
	Exercises []program.Exercise
}

// exercisesGET lists the whole exercise catalog.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	exercises, err := app.programService.ListExercises(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("list exercises: %w", err))
		return
	}

	data := exercisesTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercises:        exercises,
	}

	app.render(w, r, http.StatusOK, "exercises", data)
}

// exerciseInfoTemplateData contains data for the exercise info template.
type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise program.Exercise
}

// exerciseInfoGET shows the guide for one exercise. A missing guide is generated
// on first view when an OpenAI API key is configured.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := app.parseExerciseIDParam(w, r)
	if !ok {
		return
	}

	exercise, err := app.programService.DescribeExercise(r.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, fmt.Errorf("describe exercise: %w", err))
		return
	}

	data := exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercise:         exercise,
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}

// exerciseGeneratePOST adds an AI-generated exercise to the catalog.
func (app *application) exerciseGeneratePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	if name == "" {
		http.Error(w, "Exercise name is required", http.StatusUnprocessableEntity)
		return
	}

	exercise, err := app.programService.AddGeneratedExercise(r.Context(), name)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("add generated exercise: %w", err))
		return
	}

	redirect(w, r, fmt.Sprintf("/exercises/%d/info", exercise.ID))
}
