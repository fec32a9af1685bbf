package httpapi

import (
	"net/http"
	"time"

	"restage/internal/http/handlers"
	"restage/internal/infra"
	appmw "restage/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, lookup appmw.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		appmw.Logger(app.Log),
		appmw.CORS(cfg.CORSAllowedOrigins),
		appmw.RateLimit(cfg.RateLimitPerMin, time.Minute),
		appmw.I18N(cfg.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/prompts", func(r chi.Router) {
		r.Post("/", app.PromptBuild)
		r.Post("/plan", app.PromptPlan)
	})

	r.Route("/v1/catalog", func(r chi.Router) {
		r.Get("/styles", app.CatalogStyles)
		r.Get("/rooms", app.CatalogRooms)
		r.Get("/materials", app.CatalogMaterials)
		r.Get("/options", app.CatalogOptions)
	})

	r.Route("/v1/vocabulary", func(r chi.Router) {
		r.Get("/", app.VocabularyList)
		r.Post("/resolve", app.VocabularyResolve)
	})

	r.Post("/v1/contracts/validate", app.ContractValidate)

	return r
}
