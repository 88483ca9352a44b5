package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/tylerleech/twnkil-schedule/internal/config"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
	"github.com/tylerleech/twnkil-schedule/internal/repository"
	"github.com/tylerleech/twnkil-schedule/internal/scheduler"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	scheduler   *scheduler.Scheduler
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

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
		scheduler:   scheduler.New(repo, scheduler.NewGenerator(scheduler.DefaultSource)),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a logged-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/users", h.CreateUser)

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", h.GetAllAssignments)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateAssignment)
			r.Get("/recent/{limit}", h.GetRecentAssignments)
			r.Get("/week/{date}", h.GetAssignmentByWeek)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/generate", h.GenerateForWeek)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/generate-next", h.GenerateNextWeek)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.assignment)
				r.Get("/", h.GetAssignment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.UpdateAssignment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteAssignment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/send-notifications", h.SendNotifications)
			})
		})
	})
}
