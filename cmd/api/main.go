package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-portal/internal/common/api"
	"go-portal/internal/config"
	"go-portal/internal/database"
	"go-portal/internal/features/audit"
	"go-portal/internal/features/auth"
	cron_feature "go-portal/internal/features/cron"
	"go-portal/internal/features/directory"
	"go-portal/internal/features/export"
	"go-portal/internal/features/member"
	"go-portal/internal/features/saved_filter"
	"go-portal/internal/features/system"
	"go-portal/internal/logger"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			// Repositories
			audit.NewAuditRepository,
			auth.NewUserRepository,
			member.NewMemberRepository,
			directory.NewPreferenceRepository,
			saved_filter.NewSavedFilterRepository,

			// Services
			audit.NewAuditService,
			auth.NewAuthService,
			member.NewMemberService,
			export.NewExportService,
			directory.NewDirectoryService,
			saved_filter.NewSavedFilterService,
			cron_feature.NewRetentionService,

			// Controllers
			audit.NewAuditController,
			auth.NewAuthController,
			member.NewMemberController,
			directory.NewDirectoryController,
			saved_filter.NewSavedFilterController,

			// API Routes
			AsRoute(audit.NewAuditApi),
			AsRoute(auth.NewAuthApi),
			AsRoute(member.NewMemberApi),
			AsRoute(directory.NewDirectoryApi),
			AsRoute(saved_filter.NewSavedFilterApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, retention cron_feature.RetentionService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return retention.InitializeScheduler(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return retention.StopScheduler()
					},
				})
			},
		),
	)

	app.Run()
}
