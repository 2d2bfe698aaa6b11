// Package pdfgen renders payroll payment receipts as PDF documents.
package pdfgen

import (
	"fmt"

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

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

var (
	colorPrimary = &props.Color{Red: 54, Green: 66, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MarotoReceiptRenderer builds A4 payment receipts with Maroto v2.
type MarotoReceiptRenderer struct{}

// NewMarotoReceiptRenderer creates a new MarotoReceiptRenderer.
func NewMarotoReceiptRenderer() *MarotoReceiptRenderer {
	return &MarotoReceiptRenderer{}
}

// Render produces the PDF bytes for a single receipt.
func (r *MarotoReceiptRenderer) Render(receipt domain.PaymentReceipt, period domain.PayrollPeriod, home domain.FuneralHome) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Liquidacion de Pago", true).
		WithAuthor(home.TradeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(home, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(collaboratorRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRows(receipt)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdfgen: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func periodLabel(period domain.PayrollPeriod) string {
	if period.Mes >= 1 && period.Mes <= 12 {
		return fmt.Sprintf("%s %d", monthNames[period.Mes], period.Anio)
	}
	return fmt.Sprintf("%02d/%d", period.Mes, period.Anio)
}

func headerRow(home domain.FuneralHome, period domain.PayrollPeriod) core.Row {
	name := home.TradeName
	if name == "" {
		name = home.LegalName
	}
	return row.New(20).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("RUT: "+home.RUT, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LIQUIDACION DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(period), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
		),
	)
}

func collaboratorRow(receipt domain.PaymentReceipt) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COLABORADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(receipt.CollaboratorName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
		),
	)
}

func amountRows(receipt domain.PaymentReceipt) []core.Row {
	amountRow := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		color := colorGray
		size := 10.0
		if bold {
			style = fontstyle.Bold
			color = colorPrimary
			size = 12
		}
		return row.New(8).Add(
			col.New(7).Add(text.New(label, props.Text{
				Style: style, Size: size, Align: align.Right, Right: 2, Color: color, Top: 1,
			})),
			col.New(5).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Right: 1, Color: color, Top: 1,
			})),
		)
	}

	return []core.Row{
		amountRow("Sueldo base:", "$"+formatMoney(receipt.SueldoBase.StringFixed(0)), false),
		amountRow("Extras por servicios:", "$"+formatMoney(receipt.Extras.StringFixed(0)), false),
		amountRow("Descuentos:", "-$"+formatMoney(receipt.Descuentos.StringFixed(0)), false),
		amountRow("TOTAL LIQUIDO:", "$"+formatMoney(receipt.TotalLiquido.StringFixed(0)), true),
	}
}

func footerRow(receipt domain.PaymentReceipt) core.Row {
	issued := receipt.IssuedAt.Format("02/01/2006")
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Emitido el "+issued+"  |  Comprobante "+receipt.ReceiptID, props.Text{
				Size: 7, Color: colorGray, Top: 3,
			}),
		),
	)
}

// formatMoney inserts thousands separators into a plain digit string.
// "1250000" becomes "1.250.000".
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}
