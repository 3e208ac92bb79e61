package report

import (
	"context"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
	"github.com/obejashaundev/nissan-sales-server/internal/domain/repository"
)

// LeadPDFGenerator puerto de salida para la representación PDF del reporte de
// prospectos. La implementación concreta usa Maroto; para tests se inyecta un mock.
type LeadPDFGenerator interface {
	GenerateLeadReport(ctx context.Context, leads []*entity.CustomerExpanded) ([]byte, error)
}

// LeadReportUseCase genera el reporte PDF de prospectos activos.
type LeadReportUseCase struct {
	customers repository.CustomerRepository
	pdf       LeadPDFGenerator
}

// NewLeadReportUseCase construye el caso de uso.
func NewLeadReportUseCase(customers repository.CustomerRepository, pdf LeadPDFGenerator) *LeadReportUseCase {
	return &LeadReportUseCase{customers: customers, pdf: pdf}
}

// Generate arma el reporte con los prospectos activos y sus referencias expandidas.
func (uc *LeadReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	leads, err := uc.customers.ListActiveExpanded()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLeadReport(ctx, leads)
}
