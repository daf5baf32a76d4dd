package server

import (
	"hotel-server/confs"
	"hotel-server/db"
	"hotel-server/handlers"
	httpHandler "hotel-server/handlers/http"
	"hotel-server/repositories"
	"hotel-server/services"
	"hotel-server/token"
	"hotel-server/usecases"
	"hotel-server/ws"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	guestRepo := repositories.NewGuestPgRepository(s.db)
	roomRepo := repositories.NewRoomPgRepository(s.db)
	facilityRepo := repositories.NewFacilityPgRepository(s.db)
	bookingRepo := repositories.NewBookingPgRepository(s.db)
	eventRepo := repositories.NewBookingEventPgRepository(s.db)

	// Token manager
	tokens := token.NewManager(confs.JWTSecret(), confs.TokenTTL())

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	authUseCase := usecases.NewAuthUseCase(userRepo, tokens)
	guestUseCase := usecases.NewGuestUseCase(guestRepo)
	roomUseCase := usecases.NewRoomUseCase(roomRepo)
	facilityUseCase := usecases.NewFacilityUseCase(facilityRepo)
	bookingUseCase := usecases.NewBookingUseCase(bookingRepo, guestRepo, roomRepo, facilityRepo, userUseCase)

	// Activity recorder flushes the audit buffer periodically
	recorder := services.NewActivityRecorder(eventRepo, 5*time.Minute)
	recorder.Start()

	// Websocket hub and handler
	hub := ws.NewHub()
	eventsHandler := handlers.NewEventsHandler(hub)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	guestHandler := httpHandler.NewGuestHandler(guestUseCase)
	roomHandler := httpHandler.NewRoomHandler(roomUseCase)
	facilityHandler := httpHandler.NewFacilityHandler(facilityUseCase)
	bookingHandler := httpHandler.NewBookingHandler(bookingUseCase, hub, recorder)
	activityHandler := handlers.NewActivityHandler(recorder, eventRepo)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a valid token
		authorized := api.Group("")
		authorized.Use(httpHandler.RequireAuth(tokens))
		{
			// Booking routes
			bookings := authorized.Group("/bookings")
			{
				bookings.POST("", bookingHandler.Create)
				bookings.GET("", bookingHandler.GetAll)
				bookings.GET("/incomplete", bookingHandler.GetIncomplete)
				bookings.GET("/:id", bookingHandler.Get)
				bookings.PUT("/:id", bookingHandler.Update)
				bookings.DELETE("/:id", bookingHandler.Delete)
			}

			// Guest routes
			guests := authorized.Group("/guests")
			{
				guests.POST("", guestHandler.Create)
				guests.GET("", guestHandler.GetAll)
			}

			// Room routes
			rooms := authorized.Group("/rooms")
			{
				rooms.POST("", roomHandler.Create)
				rooms.GET("", roomHandler.GetAll)
				rooms.GET("/:id", roomHandler.Get)
			}

			// Facility routes
			facilities := authorized.Group("/facilities")
			{
				facilities.POST("", facilityHandler.Create)
				facilities.GET("", facilityHandler.GetAll)
			}

			// Account routes
			users := authorized.Group("/users")
			{
				users.GET("/me", userHandler.Me)
				users.PUT("/me", userHandler.Update)
			}

			// Audit trail endpoints
			activity := authorized.Group("/activity")
			{
				activity.GET("", activityHandler.Recent)
				activity.GET("/stats", activityHandler.Stats)
				activity.POST("/flush", activityHandler.Flush)
			}

			authorized.GET("/events/clients", eventsHandler.GetConnectedClients)
		}
	}

	// Booking event feed for dashboards
	s.app.GET("/ws", eventsHandler.HandleEventsWS)

	if err := s.app.Run("0.0.0.0:" + confs.APIPort()); err != nil {
		panic(err)
	}
}
