package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// ReceiptPDFRenderer renders a payroll receipt as a PDF document.
type ReceiptPDFRenderer interface {
	Render(receipt domain.PaymentReceipt, period domain.PayrollPeriod, home domain.FuneralHome) ([]byte, error)
}

// PayrollService handles monthly payroll batches. Admin only throughout.
type PayrollService struct {
	BaseService
	payrollRepo      portsrepo.PayrollRepositoryFacade
	collaboratorRepo portsrepo.CollaboratorRepositoryFacade
	assignmentRepo   portsrepo.AssignmentRepositoryFacade
	serviceRepo      portsrepo.ServiceRepositoryFacade
	funeralHomeRepo  portsrepo.FuneralHomeRepositoryFacade
	pdfRenderer      ReceiptPDFRenderer
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(
	pr portsrepo.PayrollRepositoryFacade,
	cr portsrepo.CollaboratorRepositoryFacade,
	ar portsrepo.AssignmentRepositoryFacade,
	sr portsrepo.ServiceRepositoryFacade,
	fhr portsrepo.FuneralHomeRepositoryFacade,
	renderer ReceiptPDFRenderer,
) portssvc.PayrollSvcFacade {
	return &PayrollService{
		payrollRepo:      pr,
		collaboratorRepo: cr,
		assignmentRepo:   ar,
		serviceRepo:      sr,
		funeralHomeRepo:  fhr,
		pdfRenderer:      renderer,
	}
}

var _ portssvc.PayrollSvcFacade = (*PayrollService)(nil)

func (s *PayrollService) ListPeriods(ctx context.Context, authCtx domain.AuthContext) ([]domain.PayrollPeriod, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.payrollRepo.ListPeriods(ctx, authCtx.FuneralHomeID)
}

func (s *PayrollService) GetPeriodByID(ctx context.Context, authCtx domain.AuthContext, periodID string) (*domain.PayrollPeriod, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.payrollRepo.FindPeriodByID(ctx, authCtx.FuneralHomeID, periodID)
}

func (s *PayrollService) OpenPeriod(ctx context.Context, authCtx domain.AuthContext, req dto.OpenPayrollPeriodRequest) (*domain.PayrollPeriod, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.payrollRepo.FindPeriodByMonth(ctx, authCtx.FuneralHomeID, req.Anio, req.Mes)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationFailedError("ya existe un periodo para ese mes", nil)
	}

	period := domain.PayrollPeriod{
		PayrollPeriodID: uuid.NewString(),
		FuneralHomeID:   authCtx.FuneralHomeID,
		Anio:            req.Anio,
		Mes:             req.Mes,
		Estado:          domain.PayrollAbierto,
		AuditFields:     NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.payrollRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to open payroll period", slog.Int("anio", req.Anio), slog.Int("mes", req.Mes))
		return nil, err
	}
	s.LogInfo(ctx, "Payroll period opened", slog.String("period_id", period.PayrollPeriodID))
	return &period, nil
}

// GenerateReceipts recomputes the receipts of an open period. Each active
// collaborator gets base salary plus assignment extras for services opened in
// the period month, minus any requested deductions. The previous batch is
// replaced atomically.
func (s *PayrollService) GenerateReceipts(ctx context.Context, authCtx domain.AuthContext, periodID string, req dto.GenerateReceiptsRequest) ([]domain.PaymentReceipt, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	period, err := s.payrollRepo.FindPeriodByID(ctx, authCtx.FuneralHomeID, periodID)
	if err != nil {
		return nil, err
	}
	if period.Estado == domain.PayrollCerrado {
		return nil, apperrors.NewValidationFailedError("el periodo esta cerrado", nil)
	}

	collaborators, err := s.collaboratorRepo.ListCollaborators(ctx, authCtx.FuneralHomeID, domain.CollaboratorFilter{})
	if err != nil {
		return nil, err
	}

	extras, err := s.computeExtras(ctx, authCtx.FuneralHomeID, period.Anio, period.Mes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receipts := make([]domain.PaymentReceipt, 0, len(collaborators))
	for _, c := range collaborators {
		descuentos := req.Descuentos[c.CollaboratorID]
		extra := extras[c.CollaboratorID]
		receipts = append(receipts, domain.PaymentReceipt{
			ReceiptID:        uuid.NewString(),
			PayrollPeriodID:  period.PayrollPeriodID,
			FuneralHomeID:    authCtx.FuneralHomeID,
			CollaboratorID:   c.CollaboratorID,
			CollaboratorName: c.FullName,
			SueldoBase:       c.SueldoBase,
			Extras:           extra,
			Descuentos:       descuentos,
			TotalLiquido:     c.SueldoBase.Add(extra).Sub(descuentos),
			IssuedAt:         now,
		})
	}

	if err := s.payrollRepo.ReplaceReceipts(ctx, authCtx.FuneralHomeID, periodID, receipts); err != nil {
		s.LogError(ctx, err, "Failed to replace receipts", slog.String("period_id", periodID))
		return nil, err
	}
	s.LogInfo(ctx, "Receipts generated",
		slog.String("period_id", periodID),
		slog.Int("count", len(receipts)))
	return receipts, nil
}

// computeExtras totals per-collaborator assignment extras for the month.
// Fixed extras count as-is; percentage extras apply to the service's final
// total.
func (s *PayrollService) computeExtras(ctx context.Context, funeralHomeID string, anio, mes int) (map[string]decimal.Decimal, error) {
	assignments, err := s.assignmentRepo.ListAssignmentsForMonth(ctx, funeralHomeID, anio, mes)
	if err != nil {
		return nil, err
	}

	extras := map[string]decimal.Decimal{}
	serviceTotals := map[string]decimal.Decimal{}
	hundred := decimal.NewFromInt(100)

	for _, a := range assignments {
		var amount decimal.Decimal
		switch a.ExtraPayType {
		case domain.ExtraPayFijo:
			amount = a.ExtraPayAmount
		case domain.ExtraPayPorcentaje:
			total, ok := serviceTotals[a.ServiceID]
			if !ok {
				service, err := s.serviceRepo.FindServiceByID(ctx, funeralHomeID, a.ServiceID)
				if err != nil {
					return nil, err
				}
				total = service.TotalFinal
				serviceTotals[a.ServiceID] = total
			}
			amount = total.Mul(a.ExtraPayAmount).Div(hundred)
		default:
			continue
		}
		extras[a.CollaboratorID] = extras[a.CollaboratorID].Add(amount)
	}
	return extras, nil
}

func (s *PayrollService) ListReceipts(ctx context.Context, authCtx domain.AuthContext, periodID string) ([]domain.PaymentReceipt, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.payrollRepo.FindPeriodByID(ctx, authCtx.FuneralHomeID, periodID); err != nil {
		return nil, err
	}
	return s.payrollRepo.ListReceiptsByPeriod(ctx, authCtx.FuneralHomeID, periodID)
}

func (s *PayrollService) ClosePeriod(ctx context.Context, authCtx domain.AuthContext, periodID string) (*domain.PayrollPeriod, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	period, err := s.payrollRepo.FindPeriodByID(ctx, authCtx.FuneralHomeID, periodID)
	if err != nil {
		return nil, err
	}
	if period.Estado == domain.PayrollCerrado {
		return nil, apperrors.NewValidationFailedError("el periodo ya esta cerrado", nil)
	}

	now := time.Now()
	period.Estado = domain.PayrollCerrado
	period.ClosedAt = &now
	Touch(&period.AuditFields, authCtx.UserID, now)

	if err := s.payrollRepo.UpdatePeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to close payroll period", slog.String("period_id", periodID))
		return nil, err
	}
	s.LogInfo(ctx, "Payroll period closed", slog.String("period_id", periodID))
	return period, nil
}

func (s *PayrollService) ReceiptPDF(ctx context.Context, authCtx domain.AuthContext, periodID, receiptID string) ([]byte, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	period, err := s.payrollRepo.FindPeriodByID(ctx, authCtx.FuneralHomeID, periodID)
	if err != nil {
		return nil, err
	}
	receipt, err := s.payrollRepo.FindReceiptByID(ctx, authCtx.FuneralHomeID, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.PayrollPeriodID != period.PayrollPeriodID {
		return nil, apperrors.ErrNotFound
	}
	home, err := s.funeralHomeRepo.FindFuneralHomeByID(ctx, authCtx.FuneralHomeID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.pdfRenderer.Render(*receipt, *period, *home)
	if err != nil {
		s.LogError(ctx, err, "Failed to render receipt PDF", slog.String("receipt_id", receiptID))
		return nil, err
	}
	return pdf, nil
}
