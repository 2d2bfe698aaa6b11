package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// TransactionReader defines read operations for payment data
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, funeralHomeID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, funeralHomeID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for payment data
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, funeralHomeID, transactionID string) error
}

// TransactionRepositoryFacade combines payment repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, funeralHomeID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, funeralHomeID string, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, funeralHomeID, expenseID string) error
}

// ExpenseRepositoryFacade combines expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
