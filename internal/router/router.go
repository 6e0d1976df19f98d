package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "novellia-pets/internal/adapters/storage/memory"
	pg "novellia-pets/internal/adapters/storage/postgres"
	"novellia-pets/internal/domain/dashboard"
	"novellia-pets/internal/domain/pets"
	"novellia-pets/internal/domain/records"
	"novellia-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "novellia-pets/docs" // swagger spec, registered on import
)

type Options struct {
	// DB is the Postgres handle. nil falls back to the in-memory store
	// (dev mode and tests).
	DB *sql.DB

	// Logger enables per-request logging when set.
	Logger *zap.Logger

	// RequestTimeout bounds every request context, and with it every store
	// call a handler makes. Zero means 10s.
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	r.Use(chimw.Recoverer)

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	r.Use(chimw.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/docs/*", httpSwagger.WrapHandler)

	var (
		petRepo    pets.Repository
		recordRepo records.Repository
		dashRepo   dashboard.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		recordRepo = pg.NewRecordsRepo(opts.DB)
		dashRepo = pg.NewDashboardRepo(opts.DB)
	} else {
		store := mem.NewStore()
		petRepo = store.Pets()
		recordRepo = store.Records()
		dashRepo = store.Dashboard()
	}

	petsSvc := pets.NewService(petRepo)
	recordsSvc := records.NewService(recordRepo)
	dashSvc := dashboard.NewService(dashRepo)

	pets.RegisterRoutes(r, petsSvc)
	records.RegisterRoutes(r, recordsSvc, petsSvc)
	dashboard.RegisterRoutes(r, dashSvc)

	return r
}
