package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateExpenseRequest records an outgoing cost.
type CreateExpenseRequest struct {
	BranchID      *string              `json:"branchID" binding:"omitempty,uuid"`
	ServiceID     *string              `json:"serviceID" binding:"omitempty,uuid"`
	SupplierID    *string              `json:"supplierID" binding:"omitempty,uuid"`
	Categoria     string               `json:"categoria" binding:"required"`
	Monto         decimal.Decimal      `json:"monto" binding:"required"`
	Fecha         string               `json:"fecha" binding:"required,datetime=2006-01-02"`
	EstadoFactura domain.InvoiceStatus `json:"estadoFactura" binding:"omitempty,oneof=sin_factura pendiente facturado"`
	Descripcion   string               `json:"descripcion"`
}

// UpdateExpenseRequest partially updates an expense.
type UpdateExpenseRequest struct {
	BranchID      *string               `json:"branchID" binding:"omitempty,uuid"`
	ServiceID     *string               `json:"serviceID" binding:"omitempty,uuid"`
	SupplierID    *string               `json:"supplierID" binding:"omitempty,uuid"`
	Categoria     *string               `json:"categoria"`
	Monto         *decimal.Decimal      `json:"monto"`
	Fecha         *string               `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	EstadoFactura *domain.InvoiceStatus `json:"estadoFactura" binding:"omitempty,oneof=sin_factura pendiente facturado"`
	Descripcion   *string               `json:"descripcion"`
}

// ListExpensesQuery captures the query parameters of the expense listing.
type ListExpensesQuery struct {
	Categoria     *string               `form:"categoria"`
	SupplierID    *string               `form:"supplierID"`
	ServiceID     *string               `form:"serviceID"`
	EstadoFactura *domain.InvoiceStatus `form:"estadoFactura"`
	Desde         *time.Time            `form:"desde" time_format:"2006-01-02"`
	Hasta         *time.Time            `form:"hasta" time_format:"2006-01-02"`
}

// ToExpenseFilter converts the query DTO to a domain filter.
func (q ListExpensesQuery) ToExpenseFilter() domain.ExpenseFilter {
	return domain.ExpenseFilter{
		Categoria:     q.Categoria,
		SupplierID:    q.SupplierID,
		ServiceID:     q.ServiceID,
		EstadoFactura: q.EstadoFactura,
		Desde:         q.Desde,
		Hasta:         q.Hasta,
	}
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string               `json:"expenseID"`
	BranchID      *string              `json:"branchID,omitempty"`
	ServiceID     *string              `json:"serviceID,omitempty"`
	SupplierID    *string              `json:"supplierID,omitempty"`
	Categoria     string               `json:"categoria"`
	Monto         decimal.Decimal      `json:"monto"`
	Fecha         time.Time            `json:"fecha"`
	EstadoFactura domain.InvoiceStatus `json:"estadoFactura"`
	Descripcion   string               `json:"descripcion"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		BranchID:      e.BranchID,
		ServiceID:     e.ServiceID,
		SupplierID:    e.SupplierID,
		Categoria:     e.Categoria,
		Monto:         e.Monto,
		Fecha:         e.Fecha,
		EstadoFactura: e.EstadoFactura,
		Descripcion:   e.Descripcion,
		CreatedAt:     e.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to DTOs.
func ToExpenseListResponse(expenses []domain.Expense) []ExpenseResponse {
	list := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		list[i] = ToExpenseResponse(&e)
	}
	return list
}
