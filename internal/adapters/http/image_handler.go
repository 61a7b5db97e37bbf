package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-desktop/internal/core/ports"
)

type ImageHandler struct {
	service ports.ImageService
	builder ports.BuilderService
}

func NewImageHandler(service ports.ImageService, builder ports.BuilderService) *ImageHandler {
	return &ImageHandler{service: service, builder: builder}
}

func (h *ImageHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.service.ListImages(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(images)
}

type PullImageRequest struct {
	Image string `json:"image"`
}

func (h *ImageHandler) PullImage(c *fiber.Ctx) error {
	var req PullImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Image = strings.TrimSpace(req.Image)
	if req.Image == "" {
		return badRequest(c, "Image name is required")
	}

	out, err := h.service.PullImage(c.Context(), req.Image)
	if err != nil {
		return sendError(c, err)
	}
	return sendOutput(c, out)
}

func (h *ImageHandler) RemoveImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Image ID is required")
	}

	out, err := h.service.RemoveImage(c.Context(), id)
	if err != nil {
		return sendError(c, err)
	}
	return sendOutput(c, out)
}

type BuildImageRequest struct {
	Image   string `json:"image"`
	RepoURL string `json:"repo_url"`
}

// BuildImage clones and builds a repository. This blocks until the build
// is done.
func (h *ImageHandler) BuildImage(c *fiber.Ctx) error {
	var req BuildImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RepoURL == "" || req.Image == "" {
		return badRequest(c, "Image name and Repo URL are required")
	}

	result, err := h.builder.BuildImage(c.Context(), req.RepoURL, req.Image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Build failed: " + err.Error(),
			"build": result,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
