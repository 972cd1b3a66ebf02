package settlement

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/pdf"
)

// RenderSettlementPDF renders the settlement statement with its consumed logs.
func (s *SettlementServiceImpl) RenderSettlementPDF(ctx context.Context, id string) ([]byte, error) {
	ws, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	links, err := s.settlementRepo.ListLinkedLogs(ctx, ws.ID)
	if err != nil {
		return nil, err
	}

	doc := pdf.New("Settlement Statement")
	if ws.WorkerName != nil {
		doc.Line("Worker", *ws.WorkerName)
	}
	if ws.WorkerType != nil {
		doc.Line("Worker type", *ws.WorkerType)
	}
	doc.Line("Settlement date", calendar.FormatDate(ws.SettlementDate))
	doc.Line("Period", calendar.FormatDate(ws.FromDate)+" to "+calendar.FormatDate(ws.ToDate))
	doc.Line("Status", string(ws.PaymentStatus))
	if ws.PaymentMethod != nil {
		doc.Line("Payment method", *ws.PaymentMethod)
	}

	doc.Heading(fmt.Sprintf("Work logs (%d)", len(links)))
	rows := make([][]string, 0, len(links))
	for _, l := range links {
		customer, tons, rate := "-", "-", "-"
		if l.CustomerName != nil {
			customer = *l.CustomerName
		}
		if l.Tons != nil {
			tons = l.Tons.StringFixed(2)
		}
		if l.RatePerTon != nil {
			rate = l.RatePerTon.StringFixed(2)
		}
		rows = append(rows, []string{calendar.FormatDate(l.LogDate), customer, tons, rate, l.Amount.StringFixed(2)})
	}
	doc.Table(
		[]string{"Date", "Customer", "Tons", "Rate", "Amount"},
		[]float64{30, 60, 25, 30, 35},
		rows,
	)

	d := ws.Deductions
	doc.Heading("Summary")
	doc.AmountLine("Gross pay", ws.GrossPay)
	doc.AmountLine("EPF", d.EPFEmployee)
	doc.AmountLine("SOCSO", d.SOCSOEmployee)
	doc.AmountLine("EIS", d.EISEmployee)
	doc.AmountLine("PCB", d.PCB)
	doc.AmountLine("Total deductions", ws.TotalDeductions)
	doc.AmountLine("Net pay", ws.NetPay)

	doc.Heading("Employer contributions")
	doc.AmountLine("EPF", d.EPFEmployer)
	doc.AmountLine("SOCSO", d.SOCSOEmployer)
	doc.AmountLine("EIS", d.EISEmployer)

	return doc.Bytes()
}
