package handlers

import (
	"toolroom/internal/app"
	machineController "toolroom/internal/controllers/machines"
	"toolroom/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MachineHandler struct {
	Handler
	machineController machineController.MachineControllerInterface
}

func NewMachineHandler(app app.App, router fiber.Router) *MachineHandler {
	log := logger.New("handlers").File("machine_handler")
	return &MachineHandler{
		machineController: app.Controllers.Machine,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MachineHandler) Register() {
	machines := h.router.Group("/machines")
	machines.Get("", h.getMachines)
	machines.Post("", h.createMachine)
	machines.Get("/:id", h.getMachine)
	machines.Put("/:id", h.updateMachine)
}

func (h *MachineHandler) getMachines(c *fiber.Ctx) error {
	machines, err := h.machineController.GetMachines(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to get machines")
	}

	return c.JSON(fiber.Map{"machines": machines})
}

func (h *MachineHandler) createMachine(c *fiber.Ctx) error {
	var req machineController.CreateMachineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	machine, err := h.machineController.CreateMachine(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create machine")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"machine": machine})
}

func (h *MachineHandler) getMachine(c *fiber.Ctx) error {
	machineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid machine ID"})
	}

	machine, err := h.machineController.GetMachine(c.UserContext(), machineID)
	if err != nil {
		return respondError(c, err, "Failed to get machine")
	}

	return c.JSON(fiber.Map{"machine": machine})
}

func (h *MachineHandler) updateMachine(c *fiber.Ctx) error {
	machineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid machine ID"})
	}

	var req machineController.UpdateMachineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	machine, err := h.machineController.UpdateMachine(c.UserContext(), machineID, &req)
	if err != nil {
		return respondError(c, err, "Failed to update machine")
	}

	return c.JSON(fiber.Map{"machine": machine})
}
