package controller

import (
	"errors"

	"ai-studybuddy-be/internal/dto"
	"ai-studybuddy-be/internal/pkg/serverutils"
	"ai-studybuddy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExamController interface {
	RegisterRoutes(r fiber.Router)
	GenerateQuiz(ctx *fiber.Ctx) error
	GenerateExam(ctx *fiber.Ctx) error
	GradeSubjective(ctx *fiber.Ctx) error
}

type examController struct {
	service service.IExamService
}

func NewExamController(service service.IExamService) IExamController {
	return &examController{service: service}
}

func (c *examController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-quiz", serverutils.JwtMiddleware, c.GenerateQuiz)
	r.Post("/generate-exam", serverutils.JwtMiddleware, c.GenerateExam)
	r.Post("/grade-subjective", serverutils.JwtMiddleware, c.GradeSubjective)
}

func (c *examController) GenerateQuiz(ctx *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.GenerateQuiz(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Quiz generated",
		"data":    res,
	})
}

func (c *examController) GenerateExam(ctx *fiber.Ctx) error {
	var req dto.GenerateExamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.GenerateExam(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    400,
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Exam generated",
		"data":    res,
	})
}

func (c *examController) GradeSubjective(ctx *fiber.Ctx) error {
	var req dto.GradeSubjectiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.GradeSubjective(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Answer graded",
		"data":    res,
	})
}
