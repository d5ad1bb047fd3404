package router

import (
	"database/sql"
	"net/http"

	mem "clinicals/internal/adapters/storage/memory"
	pg "clinicals/internal/adapters/storage/postgres"
	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
	"clinicals/internal/domain/reports"
	"clinicals/internal/middleware"
	"clinicals/internal/platform/logger"

	_ "clinicals/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Puede ser nil (no loguea).
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		patientRepo patients.Repository
		dataRepo    clinicaldata.Repository
	)

	if opts.DB != nil {
		patientRepo = pg.NewPatientsRepo(opts.DB)
		dataRepo = pg.NewClinicalDataRepo(opts.DB)
	} else {
		// un solo store para que el borrado en cascada vea ambas tablas
		store := mem.NewStore()
		patientRepo = mem.NewPatientRepo(store)
		dataRepo = mem.NewClinicalDataRepo(store)
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientRepo)
	dataSvc := clinicaldata.NewService(dataRepo, patientsSvc)
	reportsSvc := reports.NewService(patientsSvc, dataSvc)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc)
	clinicaldata.RegisterRoutes(r, dataSvc, patientsSvc)
	reports.RegisterRoutes(r, reportsSvc)

	return r
}
