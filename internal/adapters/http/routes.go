package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/melih/lighthouse-desktop/internal/logger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Containers *ContainerHandler
	Images     *ImageHandler
	Volumes    *VolumeHandler
	// Proxy is optional.
	Proxy *ProxyHandler
}

// NewApp creates the fiber app with every route registered.
func NewApp(h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestLogger)
	if h.Proxy != nil {
		app.Use(h.Proxy.ProxyRequest)
	}

	v1 := app.Group("/api").Group("/v1")

	containers := v1.Group("/containers")
	containers.Get("/", h.Containers.ListContainers)
	containers.Get("/:id/logs", h.Containers.GetContainerLogs)
	containers.Get("/:id/inspect", h.Containers.InspectContainer)
	containers.Get("/:id/stats", h.Containers.GetContainerStats)
	containers.Post("/:id/:action", h.Containers.ContainerAction)
	v1.Get("/stats", h.Containers.GetAllStats)

	images := v1.Group("/images")
	images.Get("/", h.Images.ListImages)
	images.Post("/pull", h.Images.PullImage)
	images.Post("/build", h.Images.BuildImage)
	images.Delete("/:id", h.Images.RemoveImage)

	volumes := v1.Group("/volumes")
	volumes.Get("/", h.Volumes.ListVolumes)
	volumes.Post("/", h.Volumes.CreateVolume)
	volumes.Delete("/:name", h.Volumes.RemoveVolume)

	return app
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	logger.Get().Debugw("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"took", time.Since(start),
	)
	return err
}
