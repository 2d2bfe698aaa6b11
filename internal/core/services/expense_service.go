package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// ExpenseService handles outgoing costs.
type ExpenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(er portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &ExpenseService{expenseRepo: er}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

func (s *ExpenseService) GetExpenseByID(ctx context.Context, authCtx domain.AuthContext, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, authCtx.FuneralHomeID, expenseID)
}

func (s *ExpenseService) ListExpenses(ctx context.Context, authCtx domain.AuthContext, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	return s.expenseRepo.ListExpenses(ctx, authCtx.FuneralHomeID, filter)
}

func (s *ExpenseService) CreateExpense(ctx context.Context, authCtx domain.AuthContext, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return nil, err
	}
	if !req.Monto.IsPositive() {
		return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("fecha invalida", err)
	}

	estadoFactura := req.EstadoFactura
	if estadoFactura == "" {
		estadoFactura = domain.InvoiceSinFactura
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		BranchID:      req.BranchID,
		ServiceID:     req.ServiceID,
		SupplierID:    req.SupplierID,
		Categoria:     req.Categoria,
		Monto:         req.Monto,
		Fecha:         fecha,
		EstadoFactura: estadoFactura,
		Descripcion:   req.Descripcion,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("categoria", req.Categoria))
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, authCtx domain.AuthContext, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, authCtx.FuneralHomeID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.BranchID != nil {
		expense.BranchID = req.BranchID
	}
	if req.ServiceID != nil {
		expense.ServiceID = req.ServiceID
	}
	if req.SupplierID != nil {
		expense.SupplierID = req.SupplierID
	}
	if req.Categoria != nil {
		expense.Categoria = *req.Categoria
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
		}
		expense.Monto = *req.Monto
	}
	if req.Fecha != nil {
		fecha, err := time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("fecha invalida", err)
		}
		expense.Fecha = fecha
	}
	if req.EstadoFactura != nil {
		expense.EstadoFactura = *req.EstadoFactura
	}
	if req.Descripcion != nil {
		expense.Descripcion = *req.Descripcion
	}
	Touch(&expense.AuditFields, authCtx.UserID, time.Now())

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, authCtx domain.AuthContext, expenseID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return err
	}
	return s.expenseRepo.DeleteExpense(ctx, authCtx.FuneralHomeID, expenseID)
}
