package server

import (
	"context"
	"net/http"

	"github.com/JaeMinBird/Courtly/internal/auth"
	"github.com/JaeMinBird/Courtly/internal/coach"
	"github.com/JaeMinBird/Courtly/internal/config"
	"github.com/JaeMinBird/Courtly/internal/court"
	"github.com/JaeMinBird/Courtly/internal/email"
	"github.com/JaeMinBird/Courtly/internal/lessons"
	"github.com/JaeMinBird/Courtly/internal/location"
	"github.com/JaeMinBird/Courtly/internal/reservation"
	"github.com/JaeMinBird/Courtly/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, sessions *auth.SessionStore, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), sessions, emailService, cfg.JWTSecret))
	locationHandler := location.NewHandler(location.NewService(location.NewRepository(db)))
	courtHandler := court.NewHandler(court.NewService(court.NewRepository(db)))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservation.NewRepository(db), emailService))
	coachHandler := coach.NewHandler(coach.NewService(coach.NewRepository(db)))
	lessonsHandler := lessons.NewHandler(lessons.NewService(lessons.NewRepository(db)))

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret, sessions)
	adminMiddleware := auth.RequireRole("admin")

	api := router.Group("/api")
	{
		api.POST("/auth", RateLimitMiddleware(cfg.AuthRateLimit, cfg.AuthRateBurst), userHandler.Auth)
		api.GET("/me", authMiddleware, userHandler.GetMe)

		api.GET("/locations", locationHandler.ListLocations)
		api.POST("/locations", locationHandler.CreateLocation)
		api.GET("/locations/:id", locationHandler.GetLocation)
		api.PUT("/locations/:id", locationHandler.UpdateLocation)
		api.DELETE("/locations/:id", locationHandler.DeleteLocation)

		api.GET("/courts", courtHandler.ListCourts)
		api.POST("/courts", courtHandler.CreateCourt)
		api.GET("/courts/:id", courtHandler.GetCourt)
		api.PUT("/courts/:id", courtHandler.UpdateCourt)
		api.DELETE("/courts/:id", courtHandler.DeleteCourt)

		api.GET("/reservations", reservationHandler.ListReservations)
		api.POST("/reservations", reservationHandler.CreateReservation)
		api.GET("/reservations/:id", reservationHandler.GetReservation)
		api.PUT("/reservations/:id", reservationHandler.UpdateReservation)
		api.DELETE("/reservations/:id", reservationHandler.DeleteReservation)

		api.GET("/coaches", coachHandler.ListCoaches)
		api.POST("/coaches", coachHandler.CreateCoach)
		api.GET("/coaches/:id", coachHandler.GetCoach)
		api.PUT("/coaches/:id", coachHandler.UpdateCoach)
		api.DELETE("/coaches/:id", coachHandler.DeleteCoach)
		api.GET("/coaches/:id/availability", coachHandler.ListAvailability)
		api.POST("/coaches/:id/availability", coachHandler.CreateAvailability)
		api.DELETE("/availability/:id", coachHandler.DeleteAvailability)

		api.GET("/packages", lessonsHandler.ListPackages)
		api.GET("/packages/:id", lessonsHandler.GetPackage)
		api.POST("/packages", authMiddleware, adminMiddleware, lessonsHandler.CreatePackage)
		api.PUT("/packages/:id", authMiddleware, adminMiddleware, lessonsHandler.UpdatePackage)
		api.DELETE("/packages/:id", authMiddleware, adminMiddleware, lessonsHandler.DeletePackage)

		api.GET("/member-packages", lessonsHandler.ListMemberPackages)
		api.POST("/member-packages", lessonsHandler.PurchasePackage)
		api.GET("/member-packages/:id", lessonsHandler.GetMemberPackage)

		api.GET("/lesson-bookings", lessonsHandler.ListBookings)
		api.POST("/lesson-bookings", lessonsHandler.CreateBooking)
		api.GET("/lesson-bookings/:id", lessonsHandler.GetBooking)
		api.PUT("/lesson-bookings/:id", lessonsHandler.UpdateBooking)
		api.DELETE("/lesson-bookings/:id", lessonsHandler.DeleteBooking)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// Handler exposes the router for tests and for http.Server wiring.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
