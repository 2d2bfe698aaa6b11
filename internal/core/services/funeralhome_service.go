package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
)

// FuneralHomeService exposes the caller's own tenant record.
type FuneralHomeService struct {
	BaseService
	funeralHomeRepo portsrepo.FuneralHomeRepositoryFacade
}

// NewFuneralHomeService creates a new FuneralHomeService.
func NewFuneralHomeService(fhr portsrepo.FuneralHomeRepositoryFacade) portssvc.FuneralHomeSvcFacade {
	return &FuneralHomeService{funeralHomeRepo: fhr}
}

var _ portssvc.FuneralHomeSvcFacade = (*FuneralHomeService)(nil)

func (s *FuneralHomeService) GetFuneralHome(ctx context.Context, authCtx domain.AuthContext) (*domain.FuneralHome, error) {
	return s.funeralHomeRepo.FindFuneralHomeByID(ctx, authCtx.FuneralHomeID)
}
