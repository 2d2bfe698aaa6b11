package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// OpenPayrollPeriodRequest opens a monthly payroll batch.
type OpenPayrollPeriodRequest struct {
	Anio int `json:"anio" binding:"required,min=2000,max=2100"`
	Mes  int `json:"mes" binding:"required,min=1,max=12"`
}

// GenerateReceiptsRequest regenerates the receipts of an open period.
// Deductions are keyed by collaborator ID and subtracted from the net.
type GenerateReceiptsRequest struct {
	Descuentos map[string]decimal.Decimal `json:"descuentos"`
}

// PayrollPeriodResponse defines data returned for a payroll period.
type PayrollPeriodResponse struct {
	PayrollPeriodID string               `json:"payrollPeriodID"`
	Anio            int                  `json:"anio"`
	Mes             int                  `json:"mes"`
	Estado          domain.PayrollStatus `json:"estado"`
	ClosedAt        *time.Time           `json:"closedAt,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ToPayrollPeriodResponse converts domain.PayrollPeriod to DTO.
func ToPayrollPeriodResponse(p *domain.PayrollPeriod) PayrollPeriodResponse {
	return PayrollPeriodResponse{
		PayrollPeriodID: p.PayrollPeriodID,
		Anio:            p.Anio,
		Mes:             p.Mes,
		Estado:          p.Estado,
		ClosedAt:        p.ClosedAt,
		CreatedAt:       p.CreatedAt,
	}
}

// ToPayrollPeriodListResponse converts a slice of periods to DTOs.
func ToPayrollPeriodListResponse(periods []domain.PayrollPeriod) []PayrollPeriodResponse {
	list := make([]PayrollPeriodResponse, len(periods))
	for i, p := range periods {
		list[i] = ToPayrollPeriodResponse(&p)
	}
	return list
}

// PaymentReceiptResponse defines data returned for a payroll receipt.
type PaymentReceiptResponse struct {
	ReceiptID        string          `json:"receiptID"`
	PayrollPeriodID  string          `json:"payrollPeriodID"`
	CollaboratorID   string          `json:"collaboratorID"`
	CollaboratorName string          `json:"collaboratorName"`
	SueldoBase       decimal.Decimal `json:"sueldoBase"`
	Extras           decimal.Decimal `json:"extras"`
	Descuentos       decimal.Decimal `json:"descuentos"`
	TotalLiquido     decimal.Decimal `json:"totalLiquido"`
	IssuedAt         time.Time       `json:"issuedAt"`
}

// ToPaymentReceiptResponse converts domain.PaymentReceipt to DTO.
func ToPaymentReceiptResponse(r *domain.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		ReceiptID:        r.ReceiptID,
		PayrollPeriodID:  r.PayrollPeriodID,
		CollaboratorID:   r.CollaboratorID,
		CollaboratorName: r.CollaboratorName,
		SueldoBase:       r.SueldoBase,
		Extras:           r.Extras,
		Descuentos:       r.Descuentos,
		TotalLiquido:     r.TotalLiquido,
		IssuedAt:         r.IssuedAt,
	}
}

// ToPaymentReceiptListResponse converts a slice of receipts to DTOs.
func ToPaymentReceiptListResponse(receipts []domain.PaymentReceipt) []PaymentReceiptResponse {
	list := make([]PaymentReceiptResponse, len(receipts))
	for i, r := range receipts {
		list[i] = ToPaymentReceiptResponse(&r)
	}
	return list
}
