package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog-api/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	doc, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, doc, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
