package handlers

import (
	"encoding/json"
	"net/http"

	"restage/internal/infra"
	"restage/internal/promptengine"
)

// App bundles the handler dependencies: the frozen prompt engine and the
// service logger. The engine is safe for concurrent use, so one App serves
// every request.
type App struct {
	Log     infra.Logger
	Builder *promptengine.Builder
}

func NewApp(log infra.Logger, builder *promptengine.Builder) *App {
	return &App{Log: log, Builder: builder}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

// logWarnings surfaces non-fatal engine signals in the service log, tied to
// the request id by the logging middleware fields.
func (a *App) logWarnings(r *http.Request, warnings []string) {
	for _, warning := range warnings {
		a.Log.Warn().Str("path", r.URL.Path).Msg(warning)
	}
}
