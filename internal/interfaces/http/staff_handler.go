package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// StaffHandler rutas /cafes/:cafeID/staff y /cafes/:cafeID/expenses.
type StaffHandler struct {
	store *memory.Store
}

// NewStaffHandler construye el handler de personal y gastos.
func NewStaffHandler(store *memory.Store) *StaffHandler {
	return &StaffHandler{store: store}
}

// ── Personal ──────────────────────────────────────────────────────────────────

// List empleados del café (GET .../staff).
func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.store.ListStaff(c.Params("cafeID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(staff)
}

// Create alta de empleado con su salario inicial (POST .../staff).
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	st, err := h.store.CreateStaff(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// Update edición de nombre y rol (PUT .../staff/:staffID).
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var in dto.StaffRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	st, err := h.store.UpdateStaff(c.Params("cafeID"), c.Params("staffID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

// UpdateSalary cambio de salario diario con historial
// (PUT .../staff/:staffID/salary).
func (h *StaffHandler) UpdateSalary(c *fiber.Ctx) error {
	var in dto.UpdateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	st, err := h.store.UpdateSalary(c.Params("cafeID"), c.Params("staffID"), in.DailySalary)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

// SalaryHistory historial salarial (GET .../staff/:staffID/salary-history).
func (h *StaffHandler) SalaryHistory(c *fiber.Ctx) error {
	records, err := h.store.SalaryHistory(c.Params("cafeID"), c.Params("staffID"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}

// Delete baja de empleado (DELETE .../staff/:staffID).
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteStaff(c.Params("cafeID"), c.Params("staffID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Gastos mensuales ──────────────────────────────────────────────────────────

// ListMonthly gastos fijos; ?month=YYYY-MM-01 filtra
// (GET .../expenses/monthly).
func (h *StaffHandler) ListMonthly(c *fiber.Ctx) error {
	expenses, err := h.store.ListMonthlyExpenses(c.Params("cafeID"), c.Query("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expenses)
}

// CreateMonthly alta de gasto fijo (POST .../expenses/monthly).
func (h *StaffHandler) CreateMonthly(c *fiber.Ctx) error {
	var in dto.MonthlyExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	e, err := h.store.CreateMonthlyExpense(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// UpdateMonthly edición de gasto fijo (PUT .../expenses/monthly/:expenseID).
func (h *StaffHandler) UpdateMonthly(c *fiber.Ctx) error {
	var in dto.MonthlyExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	e, err := h.store.UpdateMonthlyExpense(c.Params("cafeID"), c.Params("expenseID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}

// DeleteMonthly borrado de gasto fijo (DELETE .../expenses/monthly/:expenseID).
func (h *StaffHandler) DeleteMonthly(c *fiber.Ctx) error {
	if err := h.store.DeleteMonthlyExpense(c.Params("cafeID"), c.Params("expenseID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Gastos diarios ────────────────────────────────────────────────────────────

// ListDaily gastos puntuales; ?date=YYYY-MM-DD filtra
// (GET .../expenses/daily).
func (h *StaffHandler) ListDaily(c *fiber.Ctx) error {
	expenses, err := h.store.ListDailyExpenses(c.Params("cafeID"), c.Query("date"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expenses)
}

// CreateDaily alta de gasto puntual (POST .../expenses/daily).
func (h *StaffHandler) CreateDaily(c *fiber.Ctx) error {
	var in dto.DailyExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Description == "" || in.Date == "" {
		return badRequest(c, "description y date son requeridos")
	}
	e, err := h.store.CreateDailyExpense(c.Params("cafeID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// UpdateDaily edición de gasto puntual (PUT .../expenses/daily/:expenseID).
func (h *StaffHandler) UpdateDaily(c *fiber.Ctx) error {
	var in dto.DailyExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	e, err := h.store.UpdateDailyExpense(c.Params("cafeID"), c.Params("expenseID"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}

// DeleteDaily borrado de gasto puntual (DELETE .../expenses/daily/:expenseID).
func (h *StaffHandler) DeleteDaily(c *fiber.Ctx) error {
	if err := h.store.DeleteDailyExpense(c.Params("cafeID"), c.Params("expenseID")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
