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

// TransactionService handles payments against funeral cases.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	serviceRepo     portsrepo.ServiceRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(tr portsrepo.TransactionRepositoryFacade, sr portsrepo.ServiceRepositoryFacade) portssvc.TransactionSvcFacade {
	return &TransactionService{transactionRepo: tr, serviceRepo: sr}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) GetTransactionByID(ctx context.Context, authCtx domain.AuthContext, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, authCtx.FuneralHomeID, transactionID)
}

func (s *TransactionService) ListTransactions(ctx context.Context, authCtx domain.AuthContext, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, authCtx.FuneralHomeID, filter)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, authCtx domain.AuthContext, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return nil, err
	}
	if !req.Monto.IsPositive() {
		return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
	}
	if _, err := s.serviceRepo.FindServiceByID(ctx, authCtx.FuneralHomeID, req.ServiceID); err != nil {
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = domain.TxnPendiente
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		ServiceID:     req.ServiceID,
		Metodo:        req.Metodo,
		Estado:        estado,
		Monto:         req.Monto,
		Referencia:    req.Referencia,
		AuditFields:   NewAudit(authCtx.UserID, now),
	}
	if estado == domain.TxnPagado {
		txn.PaidAt = &now
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("service_id", req.ServiceID))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("estado", string(txn.Estado)))
	return &txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, authCtx domain.AuthContext, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, authCtx.FuneralHomeID, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Metodo != nil {
		txn.Metodo = *req.Metodo
	}
	if req.Estado != nil {
		// Stamp PaidAt on the first transition into pagado; clear it when
		// the payment leaves that state.
		if *req.Estado == domain.TxnPagado && txn.Estado != domain.TxnPagado {
			txn.PaidAt = &now
		} else if *req.Estado != domain.TxnPagado {
			txn.PaidAt = nil
		}
		txn.Estado = *req.Estado
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return nil, apperrors.NewValidationFailedError("el monto debe ser positivo", nil)
		}
		txn.Monto = *req.Monto
	}
	if req.Referencia != nil {
		txn.Referencia = *req.Referencia
	}
	Touch(&txn.AuditFields, authCtx.UserID, now)

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, authCtx domain.AuthContext, transactionID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleCaja); err != nil {
		return err
	}
	return s.transactionRepo.DeleteTransaction(ctx, authCtx.FuneralHomeID, transactionID)
}
