package app

import (
	"envanter-backend/internal/auth"
	"envanter-backend/internal/catalog"
	"envanter-backend/internal/config"
	"envanter-backend/internal/constants"
	"envanter-backend/internal/database"
	authhandlers "envanter-backend/internal/interfaces/handlers/auth"
	healthhandlers "envanter-backend/internal/interfaces/handlers/health"
	requesthandlers "envanter-backend/internal/interfaces/handlers/requests"
	stockhandlers "envanter-backend/internal/interfaces/handlers/stock"
	userhandlers "envanter-backend/internal/interfaces/handlers/user"
	"envanter-backend/internal/inventory"
	"envanter-backend/internal/license"
	"envanter-backend/internal/middleware"
	"envanter-backend/internal/printer"
	"envanter-backend/internal/requests"
	"envanter-backend/internal/stock"
	"envanter-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with global middleware and all routes.
// Returns the app plus the DB and Redis handles for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS before session so preflights never touch Redis.
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	RegisterRoutes(app, db, rdb, sessionCfg)
	return app, db, rdb, nil
}

// RegisterRoutes mounts every route on the app. Split out so handler tests
// can assemble an app on an in-memory DB and Redis.
func RegisterRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client, sessionCfg middleware.SessionConfig) {
	healthHandlers := healthhandlers.NewHandlers(db, rdb)
	app.Get("/health/json", healthHandlers.JSON)

	cookieCfg := middleware.SessionCookieConfig(sessionCfg)

	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := authhandlers.NewHandlers(userFinder, rdb, cookieCfg)
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	if db == nil {
		return
	}

	stockService := stock.NewService(db, &catalog.Resolver{DB: db})
	stockService.Inventory = &inventory.Creator{}
	stockService.License = &license.Creator{}
	stockService.Printer = &printer.Creator{}

	stockHandlers := stockhandlers.NewHandlers(stockService)
	stockGroup := app.Group("/api/v1/stok", middleware.RequireAuth())
	stockGroup.Post("/add-movement", middleware.AuthorizePermission(constants.StockAdd), stockHandlers.AddMovement)
	stockGroup.Get("/status", middleware.AuthorizePermission(constants.ViewData), stockHandlers.Status)
	stockGroup.Get("/options", middleware.AuthorizePermission(constants.ViewData), stockHandlers.Options)
	stockGroup.Post("/allocate", middleware.AuthorizePermission(constants.StockAllocate), stockHandlers.Allocate)
	stockGroup.Get("/source-detail/:kind/:id", middleware.AuthorizePermission(constants.ViewData), stockHandlers.SourceDetail)
	stockGroup.Get("/export", middleware.AuthorizePermission(constants.ViewData), stockHandlers.Export)

	requestService := &requests.Service{DB: db, Stock: stockService}
	requestHandlers := requesthandlers.NewHandlers(requestService)
	requestGroup := app.Group("/api/v1/talep", middleware.RequireAuth())
	requestGroup.Post("/convert-to-stock", middleware.AuthorizePermission(constants.RequestFulfill), requestHandlers.ConvertToStock)
	requestGroup.Post("/fulfill", middleware.AuthorizePermission(constants.RequestFulfill), requestHandlers.Fulfill)

	userHandlers := userhandlers.NewHandlers(&user.Service{DB: db})
	userGroup := app.Group("/api/v1/users", middleware.RequireAuth())
	userGroup.Post("/create-user", middleware.AuthorizePermission(constants.ManageUsers), userHandlers.CreateUser)
}
