package handlers

import (
	"io"
	"strconv"
	"toolroom/internal/app"
	"toolroom/internal/logger"
	"toolroom/internal/services"

	plannerController "toolroom/internal/controllers/planner"
	planController "toolroom/internal/controllers/plans"
	reportController "toolroom/internal/controllers/reports"
	templateController "toolroom/internal/controllers/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	. "toolroom/internal/models"
)

type MaintenanceHandler struct {
	Handler
	templateController templateController.TemplateControllerInterface
	plannerController  plannerController.PlannerControllerInterface
	planController     planController.PlanControllerInterface
	reportController   reportController.ReportControllerInterface
	blobStore          *services.BlobStoreService
}

func NewMaintenanceHandler(app app.App, router fiber.Router) *MaintenanceHandler {
	log := logger.New("handlers").File("maintenance_handler")
	return &MaintenanceHandler{
		templateController: app.Controllers.Template,
		plannerController:  app.Controllers.Planner,
		planController:     app.Controllers.Plan,
		reportController:   app.Controllers.Report,
		blobStore:          app.Services.BlobStore,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *MaintenanceHandler) Register() {
	maintenance := h.router.Group("/maintenance")

	maintenance.Get("/daily", h.getDailyStatus)
	maintenance.Post("/daily", h.upsertDailyLog)

	maintenance.Get("/templates", h.getTemplates)
	maintenance.Post("/templates", h.createTemplate)
	maintenance.Get("/templates/:id", h.getTemplate)

	maintenance.Post("/plans", h.generatePlans)
	maintenance.Get("/plans/active", h.getActivePlans)
	maintenance.Get("/plans/:id", h.getPlan)
	maintenance.Post("/plans/:id/assign", h.assignPlan)
	maintenance.Post("/plans/:id/status", h.updatePlanStatus)

	maintenance.Post("/upload", h.uploadEvidence)

	maintenance.Get("/history", h.getAllHistory)
	maintenance.Get("/history/:machineId", h.getMachineHistory)
	maintenance.Get("/upcoming/:machineId", h.getUpcomingPlans)
}

func (h *MaintenanceHandler) getDailyStatus(c *fiber.Ctx) error {
	entries, err := h.reportController.DailyStatus(c.UserContext(), c.Query("date"))
	if err != nil {
		return respondError(c, err, "Failed to get daily status")
	}

	return c.JSON(fiber.Map{"dailyStatus": entries})
}

func (h *MaintenanceHandler) upsertDailyLog(c *fiber.Ctx) error {
	var req planController.UpsertDailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	dailyLog, err := h.planController.UpsertDailyLog(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to save daily log")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"dailyLog": dailyLog})
}

func (h *MaintenanceHandler) getTemplates(c *fiber.Ctx) error {
	var frequency *string
	if q := c.Query("frequency"); q != "" {
		frequency = &q
	}

	templates, err := h.templateController.GetTemplates(c.UserContext(), frequency)
	if err != nil {
		return respondError(c, err, "Failed to get templates")
	}

	return c.JSON(fiber.Map{"templates": templates})
}

func (h *MaintenanceHandler) createTemplate(c *fiber.Ctx) error {
	var req templateController.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	template, err := h.templateController.CreateTemplate(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to create template")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"template": template})
}

func (h *MaintenanceHandler) getTemplate(c *fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	template, err := h.templateController.GetTemplate(c.UserContext(), templateID)
	if err != nil {
		return respondError(c, err, "Failed to get template")
	}

	return c.JSON(fiber.Map{"template": template})
}

func (h *MaintenanceHandler) generatePlans(c *fiber.Ctx) error {
	var req plannerController.GeneratePlansRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plans, err := h.plannerController.GeneratePlans(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Failed to generate plans")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"plans": plans,
		"count": len(plans),
	})
}

func (h *MaintenanceHandler) getActivePlans(c *fiber.Ctx) error {
	var frequency *string
	if q := c.Query("frequency"); q != "" {
		frequency = &q
	}

	plans, err := h.reportController.ActivePlans(c.UserContext(), frequency)
	if err != nil {
		return respondError(c, err, "Failed to get active plans")
	}

	return c.JSON(fiber.Map{"plans": plans})
}

func (h *MaintenanceHandler) getPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan ID"})
	}

	plan, err := h.planController.GetPlan(c.UserContext(), planID)
	if err != nil {
		return respondError(c, err, "Failed to get plan")
	}

	return c.JSON(fiber.Map{"plan": plan})
}

type assignPlanRequest struct {
	EmployeeID uuid.UUID `json:"employeeId"`
}

func (h *MaintenanceHandler) assignPlan(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan ID"})
	}

	var req assignPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.planController.Assign(c.UserContext(), planID, req.EmployeeID)
	if err != nil {
		return respondError(c, err, "Failed to assign plan")
	}

	return c.JSON(fiber.Map{"plan": plan})
}

// updatePlanStatusRequest is the combined status-change payload. A completed
// status with a checklist routes to the completion recorder; everything else
// is a plain allocation update.
type updatePlanStatusRequest struct {
	Status         *string          `json:"status,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	CompletedTasks []string         `json:"completedTasks,omitempty"`
	EvidenceURL    *string          `json:"evidenceUrl,omitempty"`
	Checklist      []ChecklistItem  `json:"checklist,omitempty"`
	OverallNotes   *string          `json:"overallNotes,omitempty"`
	PerformedBy    *uuid.UUID       `json:"performedBy,omitempty"`
	Cost           *decimal.Decimal `json:"cost,omitempty"`
}

func (h *MaintenanceHandler) updatePlanStatus(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan ID"})
	}

	var req updatePlanStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != nil && PlanStatus(*req.Status) == PlanStatusCompleted && len(req.Checklist) > 0 {
		record, err := h.planController.Complete(c.UserContext(), planID, &planController.CompletePlanRequest{
			Checklist:    req.Checklist,
			OverallNotes: req.OverallNotes,
			EvidenceURL:  req.EvidenceURL,
			PerformedBy:  req.PerformedBy,
			Cost:         req.Cost,
		})
		if err != nil {
			return respondError(c, err, "Failed to complete plan")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": record})
	}

	plan, err := h.planController.UpdateAllocation(c.UserContext(), planID, &planController.UpdateAllocationRequest{
		Status:         req.Status,
		Notes:          req.Notes,
		CompletedTasks: req.CompletedTasks,
		EvidenceURL:    req.EvidenceURL,
	})
	if err != nil {
		return respondError(c, err, "Failed to update plan")
	}

	return c.JSON(fiber.Map{"plan": plan})
}

func (h *MaintenanceHandler) uploadEvidence(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open upload"})
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to read upload"})
	}

	url, err := h.blobStore.Save(fileHeader.Filename, payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store upload"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

func (h *MaintenanceHandler) getAllHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.reportController.AllHistory(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err, "Failed to get history")
	}

	return c.JSON(fiber.Map{"history": records})
}

func (h *MaintenanceHandler) getMachineHistory(c *fiber.Ctx) error {
	machineID, err := uuid.Parse(c.Params("machineId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid machine ID"})
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := h.reportController.MachineHistory(c.UserContext(), machineID, limit)
	if err != nil {
		return respondError(c, err, "Failed to get machine history")
	}

	return c.JSON(fiber.Map{"history": records})
}

func (h *MaintenanceHandler) getUpcomingPlans(c *fiber.Ctx) error {
	machineID, err := uuid.Parse(c.Params("machineId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid machine ID"})
	}

	plans, err := h.reportController.UpcomingPlans(c.UserContext(), machineID)
	if err != nil {
		return respondError(c, err, "Failed to get upcoming plans")
	}

	return c.JSON(fiber.Map{"plans": plans})
}
