package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateTransactionRequest records a payment against a funeral case.
type CreateTransactionRequest struct {
	ServiceID  string                   `json:"serviceID" binding:"required,uuid"`
	Metodo     domain.PaymentMethod     `json:"metodo" binding:"required,oneof=efectivo transferencia tarjeta cheque"`
	Estado     domain.TransactionStatus `json:"estado" binding:"omitempty,oneof=pendiente pagado rechazado reembolsado"`
	Monto      decimal.Decimal          `json:"monto" binding:"required"`
	Referencia string                   `json:"referencia"`
}

// UpdateTransactionRequest partially updates a payment.
type UpdateTransactionRequest struct {
	Metodo     *domain.PaymentMethod     `json:"metodo" binding:"omitempty,oneof=efectivo transferencia tarjeta cheque"`
	Estado     *domain.TransactionStatus `json:"estado" binding:"omitempty,oneof=pendiente pagado rechazado reembolsado"`
	Monto      *decimal.Decimal          `json:"monto"`
	Referencia *string                   `json:"referencia"`
}

// ListTransactionsQuery captures the query parameters of the payment listing.
type ListTransactionsQuery struct {
	ServiceID *string                   `form:"serviceID"`
	Estado    *domain.TransactionStatus `form:"estado"`
	Metodo    *domain.PaymentMethod     `form:"metodo"`
	Desde     *time.Time                `form:"desde" time_format:"2006-01-02"`
	Hasta     *time.Time                `form:"hasta" time_format:"2006-01-02"`
}

// ToTransactionFilter converts the query DTO to a domain filter.
func (q ListTransactionsQuery) ToTransactionFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		ServiceID: q.ServiceID,
		Estado:    q.Estado,
		Metodo:    q.Metodo,
		Desde:     q.Desde,
		Hasta:     q.Hasta,
	}
}

// TransactionResponse defines data returned for a payment.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	ServiceID     string                   `json:"serviceID"`
	Metodo        domain.PaymentMethod     `json:"metodo"`
	Estado        domain.TransactionStatus `json:"estado"`
	Monto         decimal.Decimal          `json:"monto"`
	PaidAt        *time.Time               `json:"paidAt,omitempty"`
	Referencia    string                   `json:"referencia"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ToTransactionResponse converts domain.Transaction to DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ServiceID:     t.ServiceID,
		Metodo:        t.Metodo,
		Estado:        t.Estado,
		Monto:         t.Monto,
		PaidAt:        t.PaidAt,
		Referencia:    t.Referencia,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to DTOs.
func ToTransactionListResponse(txns []domain.Transaction) []TransactionResponse {
	list := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToTransactionResponse(&t)
	}
	return list
}
