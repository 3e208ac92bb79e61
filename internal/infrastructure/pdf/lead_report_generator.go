// Package pdf implementa la generación del reporte de prospectos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Teléfono | Sucursal | Modelo | Asesor | Medio│
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de prospectos                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoLeadReportGenerator implementa report.LeadPDFGenerator usando Maroto v2.
type MarotoLeadReportGenerator struct{}

// NewMarotoLeadReportGenerator construye el generador.
func NewMarotoLeadReportGenerator() *MarotoLeadReportGenerator { return &MarotoLeadReportGenerator{} }

// GenerateLeadReport genera el PDF del listado de prospectos y devuelve sus bytes.
func (g *MarotoLeadReportGenerator) GenerateLeadReport(_ context.Context, leads []*entity.CustomerExpanded) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Prospectos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, lead := range leads {
		m.AddRows(leadRow(lead))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(leads)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de Prospectos de Venta", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 8, Style: fontstyle.Bold, Color: colorWhite, Top: 1}),
		)
	}
	return row.New(6).Add(
		header(3, "Nombre"),
		header(2, "Teléfono"),
		header(2, "Sucursal"),
		header(2, "Modelo"),
		header(2, "Asesor"),
		header(1, "Medio"),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func leadRow(lead *entity.CustomerExpanded) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	return row.New(6).Add(
		cell(3, lead.Name),
		cell(2, lead.Phone),
		cell(2, lead.LocationName),
		cell(2, lead.CarModelName),
		cell(2, lead.SalesAdvisorName),
		cell(1, lead.AdvertisingMediumName),
	)
}

func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de prospectos activos: %d", total), props.Text{
				Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 2,
			}),
		),
	)
}
