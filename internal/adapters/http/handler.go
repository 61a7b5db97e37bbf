package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-desktop/internal/core/ports"
)

type ContainerHandler struct {
	service     ports.ContainerService
	defaultTail uint32
}

func NewContainerHandler(service ports.ContainerService, defaultTail uint32) *ContainerHandler {
	return &ContainerHandler{service: service, defaultTail: defaultTail}
}

func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	containers, err := h.service.ListContainers(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(containers)
}

func (h *ContainerHandler) ContainerAction(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Container ID is required")
	}

	out, err := h.service.ContainerAction(c.Context(), id, c.Params("action"))
	if err != nil {
		return sendError(c, err)
	}
	return sendOutput(c, out)
}

func (h *ContainerHandler) GetContainerLogs(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Container ID is required")
	}

	tail := c.QueryInt("tail", int(h.defaultTail))
	if tail < 0 {
		return badRequest(c, "tail must not be negative")
	}

	logs, err := h.service.ContainerLogs(c.Context(), id, uint32(tail))
	if err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(logs)
}

func (h *ContainerHandler) InspectContainer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Container ID is required")
	}

	doc, err := h.service.InspectContainer(c.Context(), id)
	if err != nil {
		return sendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}

func (h *ContainerHandler) GetContainerStats(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Container ID is required")
	}

	stats, err := h.service.ContainerStats(c.Context(), id)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(stats)
}

// GetAllStats samples every running container.
func (h *ContainerHandler) GetAllStats(c *fiber.Ctx) error {
	containers, err := h.service.ListContainers(c.Context())
	if err != nil {
		return sendError(c, err)
	}

	ids := make([]string, 0, len(containers))
	for _, container := range containers {
		if container.Running() {
			ids = append(ids, container.ID)
		}
	}

	stats, err := h.service.AllContainerStats(c.Context(), ids)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(stats)
}
