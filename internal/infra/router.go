package infra

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/poscustomers/docs" // swagger docs
	"github.com/umalmyha/poscustomers/internal/handlers"
	"github.com/umalmyha/poscustomers/internal/middleware"
	"golang.org/x/time/rate"
)

// Router builds echo app with every http route
func Router(app *App) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	logger := logrus.StandardLogger()

	e.Validator = app.Validator
	e.HTTPErrorHandler = middleware.ErrorHandler(e, logger)

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(logger))

	// Configs
	authCfg := app.Cfg.AuthCfg
	cookieName := authCfg.SessionCookie

	// Middleware
	authorizeMw := middleware.Authorize(app.AuthSvc, cookieName)
	requireIdentityMw := middleware.RequireIdentity(app.AuthSvc, cookieName)
	redirectAuthenticatedMw := middleware.RedirectAuthenticated(app.AuthSvc, cookieName)

	loginMws := make([]echo.MiddlewareFunc, 0)
	if authCfg.LoginRateLimit > 0 {
		store := echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(authCfg.LoginRateLimit))
		loginMws = append(loginMws, echoMiddleware.RateLimiter(store))
	}

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(app.AuthSvc, handlers.SessionCookieCfg{Name: cookieName, Secure: authCfg.Https})
	customerHandler := handlers.NewCustomerHTTPHandler(app.CustomerSvc)
	dashboardHandler := handlers.NewDashboardHTTPHandler(app.CustomerSvc, authCfg.DemoAccountCfg.Email, authCfg.DemoAccountCfg.Password)

	// gate
	e.GET(middleware.LoginPath, dashboardHandler.Login, redirectAuthenticatedMw)
	e.GET(middleware.DashboardPath, dashboardHandler.Dashboard, requireIdentityMw)

	// swagger
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login, loginMws...)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.GET("/me", authHandler.Me, authorizeMw)

	// customers
	customersAPI := api.Group("/customers", authorizeMw)
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.GET("/stats", customerHandler.Stats)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.DELETE("/:id", customerHandler.DeleteByID)

	return e
}
