package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/f1ction1/GeneratorGrafika/internal/config"
	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/holidays"
	"github.com/f1ction1/GeneratorGrafika/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	holidayCal  holidays.Calendar

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		holidayCal:  holidays.Poland(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/employers", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/", h.CreateEmployer)
			r.Get("/", h.GetMyEmployer)
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Patch("/", h.UpdateMyEmployer)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.requireEmployer)
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner, domain.RoleManager})).Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.requireEmployer)
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/generate", h.GenerateSchedule)
		})
	})
}
