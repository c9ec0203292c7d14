package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
)

// statementService renders the wallet into a downloadable PDF account
// statement.
type statementService struct {
	wallet portssvc.WalletReaderSvc
}

// NewStatementService creates the PDF statement generator.
func NewStatementService(wallet portssvc.WalletReaderSvc) portssvc.StatementSvcFacade {
	return &statementService{wallet: wallet}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) RenderStatement(ctx context.Context) ([]byte, string, error) {
	snap := s.wallet.Snapshot(ctx)
	summary := s.wallet.Summary(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("BusPago - Estado de Cuenta", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "BusPago - Estado de Cuenta")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Saldo actual: $%d COP", snap.Balance))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Viajes: %d   Total gastado: $%d   Tarifa promedio: $%s",
		summary.TripCount, summary.TotalSpent, summary.AverageFare.StringFixed(2)))
	pdf.Ln(10)

	// Trip table, newest first, same order as the ledger.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(60, 8, "Fecha", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Bus", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 8, "Ruta", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Valor", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	if len(snap.History) == 0 {
		pdf.CellFormat(185, 8, "No hay viajes registrados", "1", 1, "C", false, 0, "")
	}
	for _, trip := range snap.History {
		pdf.CellFormat(60, 8, trip.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, trip.Bus, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, trip.Route, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("-$%d", trip.Amount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render statement pdf: %w", err)
	}

	filename := fmt.Sprintf("estado-cuenta-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
