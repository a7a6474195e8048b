package handler

import (
	"reflect"
	"strings"

	"github.com/emsys-dev/employee-manager/backend/internal/config"
	"github.com/emsys-dev/employee-manager/backend/internal/repository"
	"github.com/emsys-dev/employee-manager/backend/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	tokens     token.Manager

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, tokens token.Manager) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report violations under the wire field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		tokens:     tokens,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	h.Mux.Get("/", h.Health)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)

		// everything below requires a valid session token
		r.Route("/employees", func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employee)
				r.Get("/", h.GetEmployee)
				r.Put("/", h.UpdateEmployee)
				r.Delete("/", h.DeleteEmployee)
			})
		})
	})
}
