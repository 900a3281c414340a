package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
)

// ── Personal ──────────────────────────────────────────────────────────────────

// ListStaff empleados del café.
func (s *Store) ListStaff(cafeID string) ([]entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	return append([]entity.Staff(nil), s.staff[cafeID]...), nil
}

// CreateStaff da de alta un empleado y abre su historial salarial con el
// salario inicial vigente desde hoy.
func (s *Store) CreateStaff(cafeID string, req dto.StaffRequest) (*entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	st := entity.Staff{
		ID:          uuid.NewString(),
		CafeID:      cafeID,
		Name:        req.Name,
		Role:        req.Role,
		DailySalary: req.DailySalary,
		CreatedAt:   s.now(),
	}
	s.staff[cafeID] = append(s.staff[cafeID], st)
	s.salaries[st.ID] = append(s.salaries[st.ID], entity.SalaryRecord{
		ID:          uuid.NewString(),
		StaffID:     st.ID,
		DailySalary: req.DailySalary,
		StartDate:   s.now().Format("2006-01-02"),
	})
	return &st, nil
}

// UpdateStaff edita nombre y rol. El salario va por UpdateSalary para que
// quede historial.
func (s *Store) UpdateStaff(cafeID, staffID string, req dto.StaffRequest) (*entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findStaff(cafeID, staffID)
	if st == nil {
		return nil, domain.ErrNotFound
	}
	st.Name = req.Name
	st.Role = req.Role
	out := *st
	return &out, nil
}

// UpdateSalary cambia el salario diario y añade el registro al historial,
// vigente desde hoy.
func (s *Store) UpdateSalary(cafeID, staffID string, salary decimal.Decimal) (*entity.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findStaff(cafeID, staffID)
	if st == nil {
		return nil, domain.ErrNotFound
	}
	st.DailySalary = salary
	s.salaries[staffID] = append(s.salaries[staffID], entity.SalaryRecord{
		ID:          uuid.NewString(),
		StaffID:     staffID,
		DailySalary: salary,
		StartDate:   s.now().Format("2006-01-02"),
	})
	out := *st
	return &out, nil
}

// SalaryHistory historial salarial de un empleado.
func (s *Store) SalaryHistory(cafeID, staffID string) ([]entity.SalaryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findStaff(cafeID, staffID) == nil {
		return nil, domain.ErrNotFound
	}
	return append([]entity.SalaryRecord(nil), s.salaries[staffID]...), nil
}

// DeleteStaff elimina el empleado y su historial salarial. Los pedidos que
// registró conservan su staff_id.
func (s *Store) DeleteStaff(cafeID, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff := s.staff[cafeID]
	for i, st := range staff {
		if st.ID == staffID {
			s.staff[cafeID] = append(staff[:i], staff[i+1:]...)
			delete(s.salaries, staffID)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Gastos mensuales ──────────────────────────────────────────────────────────

// ListMonthlyExpenses gastos fijos; month (YYYY-MM-01) filtra, "" devuelve
// todos.
func (s *Store) ListMonthlyExpenses(cafeID, month string) ([]entity.MonthlyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	var out []entity.MonthlyExpense
	for _, e := range s.monthly[cafeID] {
		if month == "" || e.Month == month {
			out = append(out, e)
		}
	}
	return out, nil
}

// CreateMonthlyExpense alta de gasto fijo.
func (s *Store) CreateMonthlyExpense(cafeID string, req dto.MonthlyExpenseRequest) (*entity.MonthlyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	e := entity.MonthlyExpense{
		ID:     uuid.NewString(),
		CafeID: cafeID,
		Name:   req.Name,
		Amount: req.Amount,
		Month:  req.Month,
	}
	s.monthly[cafeID] = append(s.monthly[cafeID], e)
	return &e, nil
}

// UpdateMonthlyExpense edición de gasto fijo.
func (s *Store) UpdateMonthlyExpense(cafeID, expenseID string, req dto.MonthlyExpenseRequest) (*entity.MonthlyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.monthly[cafeID]
	for i := range expenses {
		if expenses[i].ID == expenseID {
			expenses[i].Name = req.Name
			expenses[i].Amount = req.Amount
			expenses[i].Month = req.Month
			out := expenses[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteMonthlyExpense borrado de gasto fijo.
func (s *Store) DeleteMonthlyExpense(cafeID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.monthly[cafeID]
	for i, e := range expenses {
		if e.ID == expenseID {
			s.monthly[cafeID] = append(expenses[:i], expenses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Gastos diarios ────────────────────────────────────────────────────────────

// ListDailyExpenses gastos puntuales; date (YYYY-MM-DD) filtra, "" devuelve
// todos.
func (s *Store) ListDailyExpenses(cafeID, date string) ([]entity.DailyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	var out []entity.DailyExpense
	for _, e := range s.daily[cafeID] {
		if date == "" || e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// CreateDailyExpense alta de gasto puntual.
func (s *Store) CreateDailyExpense(cafeID string, req dto.DailyExpenseRequest) (*entity.DailyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cafeExists(cafeID) {
		return nil, domain.ErrNotFound
	}
	e := entity.DailyExpense{
		ID:          uuid.NewString(),
		CafeID:      cafeID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	s.daily[cafeID] = append(s.daily[cafeID], e)
	return &e, nil
}

// UpdateDailyExpense edición de gasto puntual.
func (s *Store) UpdateDailyExpense(cafeID, expenseID string, req dto.DailyExpenseRequest) (*entity.DailyExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.daily[cafeID]
	for i := range expenses {
		if expenses[i].ID == expenseID {
			expenses[i].Description = req.Description
			expenses[i].Amount = req.Amount
			expenses[i].Date = req.Date
			out := expenses[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteDailyExpense borrado de gasto puntual.
func (s *Store) DeleteDailyExpense(cafeID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.daily[cafeID]
	for i, e := range expenses {
		if e.ID == expenseID {
			s.daily[cafeID] = append(expenses[:i], expenses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// findStaff se llama con el mutex tomado.
func (s *Store) findStaff(cafeID, staffID string) *entity.Staff {
	staff := s.staff[cafeID]
	for i := range staff {
		if staff[i].ID == staffID {
			return &staff[i]
		}
	}
	return nil
}
