package router

import (
	"log/slog"
	"net/http"

	"depositbri/config"
	"depositbri/internal/auth"
	"depositbri/internal/handler"
	"depositbri/internal/middleware"
	"depositbri/internal/repository"
	"depositbri/internal/service"
	"depositbri/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps lets callers swap collaborators that talk to the outside world.
type Deps struct {
	Logger *slog.Logger
	Mailer service.Mailer
}

func Setup(cfg *config.Config, db *gorm.DB, deps Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mailer := deps.Mailer
	if mailer == nil {
		mailer = service.NewLogMailer(logger)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	popupRepo := repository.NewPopupRepository(db)
	chatRepo := repository.NewChatRepository(db)

	chatHub := ws.NewChatHub()

	// Services
	bankSvc := service.NewBankingService(userRepo, notificationRepo, popupRepo, chatRepo, chatHub, cfg.Admin.Code, cfg.Bank.Username)
	invoiceSvc := service.NewInvoiceService(userRepo, mailer, cfg.Bank.Username)

	// Handlers
	authHandler := handler.NewAuthHandler(bankSvc)
	userHandler := handler.NewUserHandler(bankSvc)
	notificationHandler := handler.NewNotificationHandler(bankSvc)
	popupHandler := handler.NewPopupHandler(bankSvc)
	adminHandler := handler.NewAdminHandler(bankSvc, invoiceSvc)
	chatHandler := handler.NewChatHandler(bankSvc)

	sessions := middleware.LoadSession(auth.NewStore(&cfg.Session))
	limiter := middleware.RateLimit(middleware.NewInMemoryRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	userMw := middleware.UserRequired()
	adminMw := middleware.AdminRequired()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(sessions)
	{
		api.POST("/login", limiter, authHandler.Login)
		api.POST("/admin-access", limiter, authHandler.AdminAccess)
		api.POST("/logout", authHandler.Logout)

		api.GET("/user-data", userMw, userHandler.UserData)
		api.GET("/balance-validation", userMw, userHandler.BalanceValidation)
		api.GET("/notifications", userMw, notificationHandler.List)
		api.GET("/popup", userMw, popupHandler.Active)

		admin := api.Group("/admin")
		admin.Use(adminMw)
		{
			admin.POST("/add-tabungan", adminHandler.AddTabungan)
			admin.POST("/add-deposito", adminHandler.AddDeposito)
			admin.POST("/send-notification", adminHandler.SendNotification)
			admin.POST("/send-popup", adminHandler.SendPopup)
			admin.POST("/send-invoice", adminHandler.SendInvoice)
		}

		chat := api.Group("/chat")
		{
			chat.GET("/messages", userMw, chatHandler.Messages)
			chat.POST("/send", middleware.UserOrAdminRequired(), chatHandler.Send)
		}
	}

	r.GET("/ws/chat", sessions, middleware.UserOrAdminRequired(), handler.UpgradeChatWS(bankSvc, chatHub))

	return r
}
