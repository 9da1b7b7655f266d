package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/config"
	"github.com/Abraxas-365/jobboard/pkg/httpx"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/Abraxas-365/jobboard/recruitment/application/applicationapi"
	"github.com/Abraxas-365/jobboard/recruitment/job/jobapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// 1. Configuration and logger
	cfg := config.Load()
	logx.SetLevel(logx.ParseLevel(cfg.App.LogLevel))
	logx.Infof("Starting %s v%s (%s)...", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(processTime)

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		pending, err := container.Events.Pending(c.Context())
		return c.JSON(fiber.Map{
			"status":         "ok",
			"version":        cfg.App.Version,
			"environment":    cfg.App.Environment,
			"db":             container.DB.PingContext(c.Context()) == nil,
			"redis":          err == nil,
			"pending_events": pending,
		})
	})

	// 6. Register Routes
	api := app.Group("/api/v1")

	// /api/v1/jobs/applications/me, /api/v1/jobs/:id/apply, /api/v1/jobs/:id/applications
	applicationapi.RegisterRoutes(api, container.ApplicationHandlers, container.AuthMiddleware)

	// /api/v1/jobs
	jobapi.RegisterRoutes(api, container.JobHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.App.Port)
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logx.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// processTime reports the handler latency in the X-Process-Time header
func processTime(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	c.Set("X-Process-Time", fmt.Sprintf("%.4f", time.Since(start).Seconds()))
	return err
}
