package report

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/report"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/pdf"
)

func (s *ReportServiceImpl) RenderManagementReportPDF(ctx context.Context, req report.ManagementReportRequest) ([]byte, error) {
	r, err := s.GenerateManagementReport(ctx, req)
	if err != nil {
		return nil, err
	}

	doc := pdf.New(fmt.Sprintf("Management Report %02d/%d", r.PeriodMonth, r.PeriodYear))
	doc.Line("Period", r.PeriodStart+" to "+r.PeriodEnd)
	doc.Line("Worker type", r.WorkerType)
	doc.Line("Generated at", r.GeneratedAt)

	p := r.Payroll
	doc.Heading(fmt.Sprintf("Payroll (%d runs, %d payslips)", p.Runs, p.Payslips))
	doc.Line("Total tons", p.TotalTons.StringFixed(3))
	doc.AmountLine("Gross pay", p.TotalGrossPay)
	doc.AmountLine("EPF employee", p.TotalEPFEmployee)
	doc.AmountLine("EPF employer", p.TotalEPFEmployer)
	doc.AmountLine("SOCSO employee", p.TotalSOCSOEmployee)
	doc.AmountLine("SOCSO employer", p.TotalSOCSOEmployer)
	doc.AmountLine("EIS employee", p.TotalEISEmployee)
	doc.AmountLine("EIS employer", p.TotalEISEmployer)
	doc.AmountLine("PCB", p.TotalPCB)
	doc.AmountLine("Total deductions", p.TotalDeductions)
	doc.AmountLine("Net pay", p.TotalNetPay)

	st := r.Settlements
	doc.Heading(fmt.Sprintf("Settlements (%d)", st.Count))
	doc.Line("Total tons", st.TotalTons.StringFixed(3))
	doc.AmountLine("Gross pay", st.TotalGrossPay)
	doc.AmountLine("Total deductions", st.TotalDeductions)
	doc.AmountLine("Net pay", st.TotalNetPay)

	if len(r.Rows) > 0 {
		doc.Page("Payslips")
		rows := make([][]string, 0, len(r.Rows))
		for _, row := range r.Rows {
			rows = append(rows, []string{
				row.WorkerName,
				row.WorkerType,
				row.GrossPay.StringFixed(2),
				row.TotalDeductions.StringFixed(2),
				row.NetPay.StringFixed(2),
			})
		}
		doc.Table(
			[]string{"Worker", "Type", "Gross", "Deductions", "Net"},
			[]float64{60, 25, 35, 35, 35},
			rows,
		)
	}

	return doc.Bytes()
}
