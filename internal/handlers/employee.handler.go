package handlers

import (
	"toolroom/internal/app"
	employeeController "toolroom/internal/controllers/employees"
	"toolroom/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	Handler
	employeeController employeeController.EmployeeControllerInterface
}

func NewEmployeeHandler(app app.App, router fiber.Router) *EmployeeHandler {
	log := logger.New("handlers").File("employee_handler")
	return &EmployeeHandler{
		employeeController: app.Controllers.Employee,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *EmployeeHandler) Register() {
	employees := h.router.Group("/employees")
	employees.Get("", h.getEmployees)
	employees.Post("", h.createEmployee)
	employees.Get("/:id", h.getEmployee)
	employees.Delete("/:id", h.deactivateEmployee)
}

func (h *EmployeeHandler) getEmployees(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)

	employees, err := h.employeeController.GetEmployees(c.UserContext(), activeOnly)
	if err != nil {
		return respondError(c, err, "Failed to get employees")
	}

	return c.JSON(fiber.Map{"employees": employees})
}

func (h *EmployeeHandler) createEmployee(c *fiber.Ctx) error {
	var req employeeController.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	employee, err := h.employeeController.CreateEmployee(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create employee")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"employee": employee})
}

func (h *EmployeeHandler) getEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	employee, err := h.employeeController.GetEmployee(c.UserContext(), employeeID)
	if err != nil {
		return respondError(c, err, "Failed to get employee")
	}

	return c.JSON(fiber.Map{"employee": employee})
}

func (h *EmployeeHandler) deactivateEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	employee, err := h.employeeController.DeactivateEmployee(c.UserContext(), employeeID)
	if err != nil {
		return respondError(c, err, "Failed to deactivate employee")
	}

	return c.JSON(fiber.Map{"employee": employee})
}
