package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noSession = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.sessionProfile(shared(next)))))
		}
		mustProfile = func(next http.Handler) http.Handler {
			return session(app.mustProfile(next))
		}
	)

	mux.Handle("POST /profiles", session(http.HandlerFunc(app.profileCreatePOST)))
	mux.Handle("POST /profiles/select", session(http.HandlerFunc(app.profileSelectPOST)))
	mux.Handle("POST /profiles/deselect", session(http.HandlerFunc(app.profileDeselectPOST)))

	mux.Handle("GET /preferences", mustProfile(http.HandlerFunc(app.preferencesGET)))
	mux.Handle("POST /preferences", mustProfile(http.HandlerFunc(app.preferencesPOST)))
	mux.Handle("POST /preferences/equipment", mustProfile(http.HandlerFunc(app.equipmentPOST)))
	mux.Handle("POST /preferences/conditions", mustProfile(http.HandlerFunc(app.conditionPOST)))

	mux.Handle("GET /program", mustProfile(http.HandlerFunc(app.programGET)))
	mux.Handle("POST /program/generate", mustProfile(http.HandlerFunc(app.programGeneratePOST)))
	mux.Handle("POST /program/regenerate", mustProfile(http.HandlerFunc(app.programRegeneratePOST)))

	mux.Handle("GET /exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /exercises/{exerciseID}/info", session(http.HandlerFunc(app.exerciseInfoGET)))
	mux.Handle("POST /exercises/generate", mustProfile(http.HandlerFunc(app.exerciseGeneratePOST)))

	mux.Handle("GET /rehab", mustProfile(http.HandlerFunc(app.rehabGET)))
	mux.Handle("POST /rehab/done", mustProfile(http.HandlerFunc(app.rehabDonePOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /api/test/timeout", noSession(http.HandlerFunc(app.testTimeout)))
	mux.Handle("POST /api/csp-reports", noSession(http.HandlerFunc(app.cspViolation)))

	// Privacy page
	mux.Handle("GET /privacy", session(http.HandlerFunc(app.privacy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
