package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eventick/eventick-api/docs"
	v1 "github.com/eventick/eventick-api/internal/api/handler/v1"
	"github.com/eventick/eventick-api/internal/api/middleware"
	"github.com/eventick/eventick-api/internal/config"
	"github.com/eventick/eventick-api/internal/payment"
	"github.com/eventick/eventick-api/internal/repository"
	"github.com/eventick/eventick-api/internal/service"
)

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	provider payment.Provider
	eventDAO repository.EventDAO
	bookDAO  repository.BookingDAO
}

func NewServer(conf *config.AppConfig, eventDAO repository.EventDAO, bookingDAO repository.BookingDAO, provider payment.Provider) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		provider: provider,
		eventDAO: eventDAO,
		bookDAO:  bookingDAO,
	}

	s.MountMiddlewares()

	eventHandler := s.initEventHandler()
	checkoutHandler := s.initCheckoutHandler()
	bookingHandler := s.initBookingHandler()
	s.MountHandlers(eventHandler, checkoutHandler, bookingHandler)

	return s
}

func (s *Server) initEventHandler() *v1.EventHandler {
	repo := repository.NewEventRepository(s.eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initCheckoutHandler() *v1.CheckoutHandler {
	eventRepo := repository.NewEventRepository(s.eventDAO)
	bookingRepo := repository.NewBookingRepository(s.bookDAO)
	svc := service.NewCheckoutService(eventRepo, bookingRepo, s.provider)
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo)
	handler := v1.NewCheckoutHandler(svc, bookingSvc, s.provider.IsMock())

	return handler
}

func (s *Server) initBookingHandler() *v1.BookingHandler {
	eventRepo := repository.NewEventRepository(s.eventDAO)
	bookingRepo := repository.NewBookingRepository(s.bookDAO)
	svc := service.NewBookingService(bookingRepo, eventRepo)
	handler := v1.NewBookingHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(eventHandler *v1.EventHandler, checkoutHandler *v1.CheckoutHandler, bookingHandler *v1.BookingHandler) {
	const basePath = "/api"

	events := s.Router.Group(basePath)
	{
		events.GET("/events", eventHandler.HandleGetEvents)
		events.GET("/events/:eventID", eventHandler.HandleGetEvent)
		events.POST("/events", eventHandler.HandleCreateEvent)
		events.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		events.GET("/events/:eventID/ticket-types", eventHandler.HandleGetTicketTypes)
		events.GET("/events/:eventID/seats", eventHandler.HandleGetSeats)
	}

	checkout := s.Router.Group(basePath)
	{
		checkout.POST("/create-payment-intent", checkoutHandler.HandleCreatePaymentIntent)
		checkout.POST("/confirm-mock-payment", checkoutHandler.HandleConfirmMockPayment)
		checkout.GET("/bookings", bookingHandler.HandleGetBookings)

		if s.Config.API.Environment == "development" {
			checkout.GET("/debug/bookings", bookingHandler.HandleDebugBookings)
		}
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Eventick Storefront API"
	docs.SwaggerInfo.Description = "Event ticketing storefront: events, seats, checkout and bookings."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
