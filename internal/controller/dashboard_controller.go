package controller

import (
	"time"

	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
	GetSyllabusProgress(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard-stats", serverutils.JwtMiddleware, c.GetStats)
	r.Get("/syllabus-progress", serverutils.JwtMiddleware, c.GetSyllabusProgress)
	r.Get("/health", c.Health)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetStats(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Stats retrieved",
		"data":    res,
	})
}

func (c *dashboardController) GetSyllabusProgress(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetSyllabusProgress(ctx.Context(), userId, ctx.Query("subject"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Progress retrieved",
		"data":    res,
	})
}

func (c *dashboardController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "ok",
		"data": fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		},
	})
}
