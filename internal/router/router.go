package router

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "worklog-service/docs"
	"worklog-service/internal/handlers"
	"worklog-service/internal/metrics"
	"worklog-service/internal/services"
	"worklog-service/internal/web"
)

// Services are the dependencies the routes are served from.
type Services struct {
	WorkEntries *services.WorkEntryService
	Exports     *services.ExportService
	Metrics     *metrics.Metrics
}

// NewRouter builds the fiber app with middleware and all routes registered.
func NewRouter(s Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "worklog-service",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(fiberrecover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(s.Metrics.Handler()))

	app.Get("/", handlers.Index)
	app.Use("/static", filesystem.New(filesystem.Config{Root: http.FS(web.Static())}))

	workEntries := handlers.NewWorkEntryHandler(s.WorkEntries)
	exports := handlers.NewExportHandler(s.Exports)
	qrCodes := handlers.NewQRCodeHandler()

	api := app.Group("/api")
	api.Post("/work_entries", workEntries.CreateWorkEntry)
	api.Get("/work_entries/export", exports.DownloadExport)
	api.Get("/work_summary", workEntries.GetWorkSummary)
	api.Post("/exports", exports.UploadExport)
	api.Get("/qrcode", qrCodes.GetQRCode)
	api.Get("/health", handlers.HealthCheck)

	api.Get("/swagger/*", swagger.HandlerDefault)

	return app
}
