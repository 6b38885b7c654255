package controller

import (
	"dawangi-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProgramController interface {
	RegisterRoutes(r fiber.Router)
	Available(ctx *fiber.Ctx) error
	Catalog(ctx *fiber.Ctx) error
	Config(ctx *fiber.Ctx) error
}

type programController struct {
	programService service.IProgramService
}

func NewProgramController(programService service.IProgramService) IProgramController {
	return &programController{
		programService: programService,
	}
}

func (c *programController) RegisterRoutes(r fiber.Router) {
	g := r.Group("/programs")
	g.Get("/available", c.Available)
	g.Get("/catalog", c.Catalog)

	r.Get("/config", c.Config)
}

func (c *programController) Available(ctx *fiber.Ctx) error {
	return ctx.JSON(c.programService.AvailablePrograms())
}

func (c *programController) Catalog(ctx *fiber.Ctx) error {
	res, err := c.programService.Catalog()
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *programController) Config(ctx *fiber.Ctx) error {
	return ctx.JSON(c.programService.RawConfig())
}
