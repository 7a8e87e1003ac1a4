package httpserver

import (
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/pkg/bininfo"
	"github.com/salesboard/backend/internal/pkg/middlewares"
	"github.com/salesboard/backend/internal/pkg/observability"
)

const chartsPathPrefix = "/api/dashboard/charts"

var (
	registerPromOnce sync.Once
	fiberprom        *fiberprometheus.FiberPrometheus
)

func Create(conf *appconfig.Config, tp *tracesdk.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Salesboard Backend",
		ServerHeader: bininfo.UserAgent(),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		Immutable:               true,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  conf.CorsAllowOrigins,
		AllowMethods:  "GET, OPTIONS",
		AllowHeaders:  "Content-Type, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + middlewares.RequestIDHeader,
	}))
	middlewares.Logger(app)

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))

	// prometheus collectors are process-wide; only the first app registers them
	registerPromOnce.Do(func() {
		fiberprom = fiberprometheus.New(observability.ServiceName)
	})
	fiberprom.RegisterAt(app, "/metrics")
	app.Use(fiberprom.Middleware)

	if tp != nil {
		app.Use(otelfiber.Middleware(otelfiber.WithTracerProvider(tp)))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	}

	if !conf.DevMode {
		app.Use(middlewares.EnrichSentry())

		if conf.ChartCacheMaxAge > 0 {
			log.Info().
				Dur("expiration", conf.ChartCacheMaxAge).
				Msg("enabling fiber-level cache for chart requests")

			app.Use(cache.New(cache.Config{
				Next: func(c *fiber.Ctx) bool {
					return !strings.HasPrefix(c.Path(), chartsPathPrefix)
				},
				CacheHeader:  "X-Salesboard-Cache",
				CacheControl: true,
				Expiration:   conf.ChartCacheMaxAge,
				KeyGenerator: func(c *fiber.Ctx) string {
					return utils.CopyString(c.OriginalURL())
				},
			}))
		}
	}

	return app
}
