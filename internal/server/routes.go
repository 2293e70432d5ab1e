package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/middleware"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// idPath is the sub-route carrying a resource id.
const idPath = "/{" + constants.ParamID + "}"

// SetupRoutes configures the router: global middleware, operational
// endpoints, then the users and cards APIs.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(s.corsOptions()))
	if s.Config.Logging.RequestLog {
		r.Use(middleware.AccessLog())
	}
	r.Use(s.metrics.Middleware)
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	if s.Config.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.Config.Server.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	r.With(chimiddleware.NoCache).Get(constants.HealthPath, s.handleHealth)
	r.Get(constants.VersionPath, s.handleVersion)
	r.Method(http.MethodGet, constants.MetricsPath, s.metrics.Handler())

	requireAuth := auth.JWTAuth(s.authProviders.JWTService)
	users := s.Handlers.UserHandler
	cards := s.Handlers.CardHandler

	r.Route(constants.UsersBasePath, func(r chi.Router) {
		r.Post("/", users.Register)
		r.Post(constants.UserLoginPath, users.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", users.ListUsers)
			r.Put(idPath, users.UpdateUser)
			r.Patch(idPath, users.ToggleBusiness)
			r.Delete(idPath, users.DeleteUser)
		})
	})

	r.Route(constants.CardsBasePath, func(r chi.Router) {
		r.Get("/", cards.ListCards)
		r.Get(idPath, cards.GetCard)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			// Static segments win over {id} in chi, so /my-cards never reaches GetCard
			r.Get(constants.MyCardsPath, cards.MyCards)
			r.Post("/", cards.CreateCard)
			r.Put(idPath, cards.UpdateCard)
			r.Patch(idPath, cards.ToggleLike)
			r.Delete(idPath, cards.DeleteCard)
		})
	})

	s.router = r
}

// GetRouter returns the configured router.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

func (s *Server) corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: s.Config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			constants.HeaderAuthorization,
			constants.HeaderContentType,
			constants.HeaderXAuthToken,
			constants.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constants.HeaderXRequestID},
		AllowCredentials: s.Config.CORS.AllowCredentials,
		MaxAge:           300,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		utils.Error(w, http.StatusServiceUnavailable, constants.CodeServiceUnavailable, constants.MsgServiceUnhealthy, nil)
		return
	}

	if err := s.health.HealthCheck(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed")
		utils.Error(w, http.StatusServiceUnavailable, constants.CodeServiceUnavailable, constants.MsgServiceUnhealthy, nil)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": s.Config.App.Version,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"name":        s.Config.App.Name,
		"version":     s.Config.App.Version,
		"environment": s.Config.App.Environment,
	})
}
