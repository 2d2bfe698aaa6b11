package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// TransactionSvcFacade defines operations for payments against cases.
// Writes are restricted to caja and admin.
type TransactionSvcFacade interface {
	// GetTransactionByID retrieves a payment within the caller's funeral home.
	GetTransactionByID(ctx context.Context, authCtx domain.AuthContext, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the tenant's payments narrowed by the filter.
	ListTransactions(ctx context.Context, authCtx domain.AuthContext, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// CreateTransaction records a payment against a case. PaidAt is stamped
	// when the payment enters in the pagado state.
	CreateTransaction(ctx context.Context, authCtx domain.AuthContext, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates a payment, stamping PaidAt on a transition
	// into pagado.
	UpdateTransaction(ctx context.Context, authCtx domain.AuthContext, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a payment.
	DeleteTransaction(ctx context.Context, authCtx domain.AuthContext, transactionID string) error
}

// ExpenseSvcFacade defines operations for outgoing costs.
// Writes are restricted to caja and admin.
type ExpenseSvcFacade interface {
	// GetExpenseByID retrieves an expense within the caller's funeral home.
	GetExpenseByID(ctx context.Context, authCtx domain.AuthContext, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves the tenant's expenses narrowed by the filter.
	ListExpenses(ctx context.Context, authCtx domain.AuthContext, filter domain.ExpenseFilter) ([]domain.Expense, error)

	// CreateExpense records an expense.
	CreateExpense(ctx context.Context, authCtx domain.AuthContext, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense updates an expense.
	UpdateExpense(ctx context.Context, authCtx domain.AuthContext, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, authCtx domain.AuthContext, expenseID string) error
}
