package services

import (
	"context"
	"time"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// ReportingSvcFacade computes tenant dashboards and financial rollups.
// Every report is recomputed per request from current rows.
type ReportingSvcFacade interface {
	// Dashboard returns the KPI rollup for the tenant as of now.
	Dashboard(ctx context.Context, authCtx domain.AuthContext, now time.Time) (*domain.DashboardReport, error)

	// RevenueStats aggregates billing and collection for an inclusive date
	// window. Nil bounds mean all time.
	RevenueStats(ctx context.Context, authCtx domain.AuthContext, desde, hasta *time.Time) (*domain.RevenueStats, error)

	// ServiceBalances returns the outstanding amount of every non-closed case.
	ServiceBalances(ctx context.Context, authCtx domain.AuthContext) ([]domain.ServiceBalance, error)

	// PayrollReport returns the per-collaborator totals of a period.
	PayrollReport(ctx context.Context, authCtx domain.AuthContext, anio, mes int) ([]domain.PayrollReportRow, error)
}
