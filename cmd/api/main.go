package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendly/internal/config"
	"spendly/internal/database"
	"spendly/internal/handlers"
	"spendly/internal/logger"
	"spendly/internal/middleware"
	"spendly/internal/report"
	"spendly/internal/services"
	"spendly/internal/validator"
)

// @title           Spendly API
// @version         1.0
// @description     Spendly is a personal finance application for tracking expenses and investments, setting monthly budgets, and generating monthly reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	expenseService := services.NewExpenseService(db)
	investmentService := services.NewInvestmentService(db)
	budgetService := services.NewBudgetService(db)
	analyticsService := services.NewAnalyticsService(db)
	auditService := services.NewAuditService(db)
	resetService := services.NewResetService(db)
	reportService := services.NewReportService(db, analyticsService, report.Config{
		MediaDir:       appConfig.MediaDir,
		CurrencySymbol: appConfig.CurrencySymbol,
		CurrencyCode:   appConfig.CurrencyCode,
		PDFEnabled:     appConfig.ReportPDFEnabled,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService, expenseService, investmentService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	reportHandler := handlers.NewReportHandler(reportService, auditService)
	resetHandler := handlers.NewResetHandler(resetService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authHandler.GetMe)

	// Profile
	protected.GET("/profile", profileHandler.GetProfile)
	protected.PUT("/profile", profileHandler.UpdateProfile)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Investment routes
	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.PUT("", budgetHandler.SetBudgets)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/overview", budgetHandler.GetBudgetOverview)

	// Dashboard and analytics
	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	analytics := protected.Group("/analytics")
	analytics.GET("/trends", analyticsHandler.GetTrends)
	analytics.GET("/breakdown", analyticsHandler.GetBreakdown)

	// Report and reset, both behind explicit confirmation
	protected.POST("/reports/monthly", reportHandler.GenerateMonthlyReport)
	protected.POST("/reset/month", resetHandler.ResetCurrentMonth)

	log.Infof("Starting Spendly backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
