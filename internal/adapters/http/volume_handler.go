package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-desktop/internal/core/ports"
)

type VolumeHandler struct {
	service ports.VolumeService
}

func NewVolumeHandler(service ports.VolumeService) *VolumeHandler {
	return &VolumeHandler{service: service}
}

func (h *VolumeHandler) ListVolumes(c *fiber.Ctx) error {
	volumes, err := h.service.ListVolumes(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(volumes)
}

type CreateVolumeRequest struct {
	Name string `json:"name"`
}

func (h *VolumeHandler) CreateVolume(c *fiber.Ctx) error {
	var req CreateVolumeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return badRequest(c, "Volume name is required")
	}

	out, err := h.service.CreateVolume(c.Context(), req.Name)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"output": out,
	})
}

func (h *VolumeHandler) RemoveVolume(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badRequest(c, "Volume name is required")
	}

	out, err := h.service.RemoveVolume(c.Context(), name)
	if err != nil {
		return sendError(c, err)
	}
	return sendOutput(c, out)
}
