package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractType distinguishes salaried employees from fee-for-service workers.
type ContractType string

const (
	ContractEmpleado   ContractType = "empleado"
	ContractHonorarios ContractType = "honorarios"
)

// Collaborator is a staff member assignable to funeral services.
type Collaborator struct {
	CollaboratorID string          `json:"collaboratorID" db:"collaborator_id"`
	FuneralHomeID  string          `json:"funeralHomeID" db:"funeral_home_id"`
	BranchID       *string         `json:"branchID" db:"branch_id"`
	FullName       string          `json:"fullName" db:"full_name"`
	RUT            string          `json:"rut" db:"rut"`
	Email          *string         `json:"email" db:"email"`
	Phone          *string         `json:"phone" db:"phone"`
	TipoContrato   ContractType    `json:"tipoContrato" db:"tipo_contrato"`
	SueldoBase     decimal.Decimal `json:"sueldoBase" db:"sueldo_base"`
	EstadoActivo   bool            `json:"estadoActivo" db:"estado_activo"`
	AuditFields
}

// PayrollStatus is the state of a payroll period.
type PayrollStatus string

const (
	PayrollAbierto PayrollStatus = "abierto"
	PayrollCerrado PayrollStatus = "cerrado"
)

// PayrollPeriod is a monthly payroll batch for a funeral home.
type PayrollPeriod struct {
	PayrollPeriodID string        `json:"payrollPeriodID" db:"payroll_period_id"`
	FuneralHomeID   string        `json:"funeralHomeID" db:"funeral_home_id"`
	Anio            int           `json:"anio" db:"anio"`
	Mes             int           `json:"mes" db:"mes"`
	Estado          PayrollStatus `json:"estado" db:"estado"`
	ClosedAt        *time.Time    `json:"closedAt" db:"closed_at"`
	AuditFields
}

// PaymentReceipt is a generated payroll receipt for one collaborator in a
// period. Net = base + extras - deductions.
type PaymentReceipt struct {
	ReceiptID        string          `json:"receiptID" db:"receipt_id"`
	PayrollPeriodID  string          `json:"payrollPeriodID" db:"payroll_period_id"`
	FuneralHomeID    string          `json:"funeralHomeID" db:"funeral_home_id"`
	CollaboratorID   string          `json:"collaboratorID" db:"collaborator_id"`
	CollaboratorName string          `json:"collaboratorName" db:"collaborator_name"`
	SueldoBase       decimal.Decimal `json:"sueldoBase" db:"sueldo_base"`
	Extras           decimal.Decimal `json:"extras" db:"extras"`
	Descuentos       decimal.Decimal `json:"descuentos" db:"descuentos"`
	TotalLiquido     decimal.Decimal `json:"totalLiquido" db:"total_liquido"`
	IssuedAt         time.Time       `json:"issuedAt" db:"issued_at"`
}
