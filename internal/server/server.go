package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/auth"
	"github.com/GurjasChalana/fitness-club/internal/billing"
	"github.com/GurjasChalana/fitness-club/internal/class"
	"github.com/GurjasChalana/fitness-club/internal/clock"
	"github.com/GurjasChalana/fitness-club/internal/config"
	"github.com/GurjasChalana/fitness-club/internal/dashboard"
	"github.com/GurjasChalana/fitness-club/internal/email"
	"github.com/GurjasChalana/fitness-club/internal/member"
	"github.com/GurjasChalana/fitness-club/internal/pt"
	"github.com/GurjasChalana/fitness-club/internal/registration"
	"github.com/GurjasChalana/fitness-club/internal/room"
	"github.com/GurjasChalana/fitness-club/internal/trainer"
	"github.com/GurjasChalana/fitness-club/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	clk := clock.Real()

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret))
	memberHandler := member.NewHandler(member.NewService(member.NewRepository(db)))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainer.NewRepository(db)))
	roomHandler := room.NewHandler(room.NewService(room.NewRepository(db)))
	classHandler := class.NewHandler(class.NewService(class.NewRepository(db), clk))
	ptHandler := pt.NewHandler(pt.NewService(pt.NewRepository(db), clk, emailService))
	registrationRepo := registration.NewRepository(db)
	registrationHandler := registration.NewHandler(
		registration.NewService(registrationRepo, clk, emailService, registrationRepo),
	)
	billingHandler := billing.NewHandler(billing.NewService(billing.NewRepository(db)))
	dashboardHandler := dashboard.NewHandler(dashboard.NewRepository(db), clk)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/auth/me", userHandler.Me)

		protected.GET("/trainers", trainerHandler.ListTrainers)
		protected.GET("/trainers/:trainerID", trainerHandler.GetTrainer)
		protected.GET("/trainers/:trainerID/slots", trainerHandler.ListSlots)
		protected.GET("/trainers/:trainerID/classes", classHandler.ListByTrainer)

		protected.GET("/classes/available", classHandler.ListAvailable)
		protected.GET("/classes/:classID", classHandler.GetClass)

		protected.GET("/invoices/:invoiceID", requireInvoiceAccess(db), billingHandler.GetInvoice)

		// Members act on their own profile only; admins bypass.
		self := protected.Group("/members/:memberID")
		self.Use(requireSelfMember(db))
		{
			self.GET("", memberHandler.GetMember)
			self.PATCH("", memberHandler.UpdateMember)
			self.GET("/goals", memberHandler.ListGoals)
			self.POST("/goals", memberHandler.AddGoal)
			self.DELETE("/goals/:goalID", memberHandler.DeleteGoal)
			self.GET("/metrics", memberHandler.ListMetrics)
			self.POST("/metrics", memberHandler.AddMetric)

			self.GET("/sessions", ptHandler.ListByMember)
			self.POST("/sessions", ptHandler.Book)
			self.PUT("/sessions/:sessionID", ptHandler.Reschedule)
			self.DELETE("/sessions/:sessionID", ptHandler.Cancel)

			self.GET("/registrations", registrationHandler.ListSchedule)
			self.POST("/registrations/:classID", registrationHandler.Register)
			self.DELETE("/registrations/:classID", registrationHandler.Unregister)

			self.GET("/invoices", billingHandler.ListByMember)
		}
	}

	trainerOnly := router.Group("/")
	trainerOnly.Use(authMiddleware, auth.RequireRole(auth.RoleTrainer, auth.RoleAdmin))
	{
		trainerOnly.POST("/trainers/:trainerID/slots", trainerHandler.CreateSlot)
		trainerOnly.PUT("/trainers/:trainerID/slots/:slotID", trainerHandler.UpdateSlot)
		trainerOnly.DELETE("/trainers/:trainerID/slots/:slotID", trainerHandler.DeleteSlot)
		trainerOnly.GET("/trainers/:trainerID/sessions", ptHandler.ListByTrainer)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/members", memberHandler.Register)
		admin.GET("/members/search", memberHandler.Search)
		admin.DELETE("/members/:memberID", memberHandler.DeleteMember)

		admin.POST("/trainers", trainerHandler.CreateTrainer)
		admin.DELETE("/trainers/:trainerID", trainerHandler.DeleteTrainer)

		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.GET("/rooms", roomHandler.ListRooms)
		admin.GET("/rooms/:roomID", roomHandler.GetRoom)
		admin.DELETE("/rooms/:roomID", roomHandler.DeleteRoom)
		admin.POST("/rooms/:roomID/equipment", roomHandler.AddEquipment)
		admin.GET("/rooms/:roomID/equipment", roomHandler.ListEquipment)
		admin.DELETE("/rooms/:roomID/equipment/:equipmentID", roomHandler.DeleteEquipment)
		admin.POST("/equipment/:equipmentID/issues", roomHandler.ReportIssue)
		admin.GET("/equipment/:equipmentID/issues", roomHandler.ListEquipmentIssues)
		admin.GET("/maintenance/open", roomHandler.ListOpenIssues)
		admin.POST("/maintenance/:logID/resolve", roomHandler.ResolveIssue)
		admin.DELETE("/maintenance/:logID", roomHandler.DeleteIssue)

		admin.POST("/classes", classHandler.CreateClass)
		admin.PATCH("/classes/:classID", classHandler.UpdateClass)
		admin.DELETE("/classes/:classID", classHandler.CancelClass)

		admin.POST("/members/:memberID/invoices", billingHandler.CreateInvoice)
		admin.POST("/invoices/:invoiceID/payments", billingHandler.AddPayment)

		admin.GET("/dashboard/overview", dashboardHandler.Overview)
		admin.GET("/dashboard/sessions", dashboardHandler.SessionStats)
		admin.GET("/dashboard/trainers", dashboardHandler.TrainerLoad)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
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
