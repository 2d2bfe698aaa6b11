package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotaStatus is the approval lifecycle of a mortuary quota claim.
type QuotaStatus string

const (
	QuotaEnPreparacion QuotaStatus = "en_preparacion"
	QuotaIngresada     QuotaStatus = "ingresada"
	QuotaAprobada      QuotaStatus = "aprobada"
	QuotaRechazada     QuotaStatus = "rechazada"
	QuotaPagada        QuotaStatus = "pagada"
)

// ValidQuotaStatus reports whether s is a known quota lifecycle state.
func ValidQuotaStatus(s QuotaStatus) bool {
	switch s {
	case QuotaEnPreparacion, QuotaIngresada, QuotaAprobada, QuotaRechazada, QuotaPagada:
		return true
	}
	return false
}

// MortuaryQuota is an insurance/benefit claim tied to a funeral service.
type MortuaryQuota struct {
	QuotaID       string          `json:"quotaID" db:"quota_id"`
	FuneralHomeID string          `json:"funeralHomeID" db:"funeral_home_id"`
	ServiceID     string          `json:"serviceID" db:"service_id"`
	Institucion   string          `json:"institucion" db:"institucion"`
	Monto         decimal.Decimal `json:"monto" db:"monto"`
	Estado        QuotaStatus     `json:"estado" db:"estado"`
	FiledAt       *time.Time      `json:"filedAt" db:"filed_at"`
	ResolvedAt    *time.Time      `json:"resolvedAt" db:"resolved_at"`
	AuditFields
}
