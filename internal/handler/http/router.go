package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/xls-import-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	ImportKey      string
	MaxUploadSize  int64
}

func NewRouter(opts RouterOptions, importHandler ImportHandler, yearHandler YearHandler, webHandler WebHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.ImportKeyHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not found")
	})

	r.Get("/", webHandler.Index)

	r.Route("/api", func(r chi.Router) {
		r.With(
			middleware.ImportKeyRequired(opts.ImportKey),
			middleware.MaxBodySize(opts.MaxUploadSize),
		).Post("/import-xls", importHandler.ImportXLS)

		r.Get("/year/{year}", yearHandler.GetYear)
		r.Get("/exports/year{year}.ts", yearHandler.Export)
	})

	return r
}
