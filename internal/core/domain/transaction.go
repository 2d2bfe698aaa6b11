package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment against a service was made.
type PaymentMethod string

const (
	MethodEfectivo      PaymentMethod = "efectivo"
	MethodTransferencia PaymentMethod = "transferencia"
	MethodTarjeta       PaymentMethod = "tarjeta"
	MethodCheque        PaymentMethod = "cheque"
)

// TransactionStatus is the state of a payment.
type TransactionStatus string

const (
	TxnPendiente   TransactionStatus = "pendiente"
	TxnPagado      TransactionStatus = "pagado"
	TxnRechazado   TransactionStatus = "rechazado"
	TxnReembolsado TransactionStatus = "reembolsado"
)

// Transaction is a payment recorded against a funeral service.
type Transaction struct {
	TransactionID string            `json:"transactionID" db:"transaction_id"`
	FuneralHomeID string            `json:"funeralHomeID" db:"funeral_home_id"`
	ServiceID     string            `json:"serviceID" db:"service_id"`
	Metodo        PaymentMethod     `json:"metodo" db:"metodo"`
	Estado        TransactionStatus `json:"estado" db:"estado"`
	Monto         decimal.Decimal   `json:"monto" db:"monto"`
	PaidAt        *time.Time        `json:"paidAt" db:"paid_at"`
	Referencia    string            `json:"referencia" db:"referencia"`
	AuditFields
}

// InvoiceStatus is the invoicing state of an expense.
type InvoiceStatus string

const (
	InvoiceSinFactura InvoiceStatus = "sin_factura"
	InvoicePendiente  InvoiceStatus = "pendiente"
	InvoiceFacturado  InvoiceStatus = "facturado"
)

// Expense is an outgoing cost, optionally tied to a service and a supplier.
type Expense struct {
	ExpenseID     string          `json:"expenseID" db:"expense_id"`
	FuneralHomeID string          `json:"funeralHomeID" db:"funeral_home_id"`
	BranchID      *string         `json:"branchID" db:"branch_id"`
	ServiceID     *string         `json:"serviceID" db:"service_id"`
	SupplierID    *string         `json:"supplierID" db:"supplier_id"`
	Categoria     string          `json:"categoria" db:"categoria"`
	Monto         decimal.Decimal `json:"monto" db:"monto"`
	Fecha         time.Time       `json:"fecha" db:"fecha"`
	EstadoFactura InvoiceStatus   `json:"estadoFactura" db:"estado_factura"`
	Descripcion   string          `json:"descripcion" db:"descripcion"`
	AuditFields
}
