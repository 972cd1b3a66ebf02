package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/pdf"
)

// RenderPayslipsPDF renders a run summary page followed by one page per payslip.
func (s *PayrollServiceImpl) RenderPayslipsPDF(ctx context.Context, runID string) ([]byte, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	payslips, err := s.loadPayslips(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	period := time.Month(run.Month).String() + fmt.Sprintf(" %d", run.Year)
	doc := pdf.New("Payroll Run " + period)

	t := run.Totals
	doc.Line("Run ID", run.ID)
	doc.Line("Worker type", string(run.WorkerType))
	doc.Line("Workers", fmt.Sprintf("%d", t.TotalWorkers))
	doc.Heading("Totals")
	doc.AmountLine("Gross pay", t.GrossPay)
	doc.AmountLine("EPF (employee)", t.EPFEmployee)
	doc.AmountLine("EPF (employer)", t.EPFEmployer)
	doc.AmountLine("SOCSO (employee)", t.SOCSOEmployee)
	doc.AmountLine("SOCSO (employer)", t.SOCSOEmployer)
	doc.AmountLine("EIS (employee)", t.EISEmployee)
	doc.AmountLine("EIS (employer)", t.EISEmployer)
	doc.AmountLine("PCB", t.PCB)
	doc.AmountLine("Total deductions", t.TotalDeductions)
	doc.AmountLine("Net pay", t.NetPay)

	for _, p := range payslips {
		writePayslipPage(doc, period, p)
	}

	return doc.Bytes()
}

func writePayslipPage(doc *pdf.Document, period string, p payroll.Payslip) {
	doc.Page("Payslip " + period)
	doc.Line("Worker", p.WorkerName)
	doc.Line("Worker type", string(p.WorkerType))
	doc.Line("Total tons", p.TotalTons.StringFixed(2))

	doc.Heading("Earnings")
	doc.AmountLine("Base income", p.BaseIncome)
	for _, it := range p.Items {
		doc.AmountLine(it.ItemName, it.Amount)
	}
	doc.AmountLine("Gross pay", p.GrossPay)

	d := p.Deductions
	doc.Heading("Deductions")
	doc.AmountLine("EPF", d.EPFEmployee)
	doc.AmountLine("SOCSO", d.SOCSOEmployee)
	doc.AmountLine("EIS", d.EISEmployee)
	doc.AmountLine("PCB", d.PCB)
	doc.AmountLine("Total deductions", p.TotalDeductions)

	doc.Heading("Employer contributions")
	doc.AmountLine("EPF", d.EPFEmployer)
	doc.AmountLine("SOCSO", d.SOCSOEmployer)
	doc.AmountLine("EIS", d.EISEmployer)

	doc.Spacer()
	doc.AmountLine("Net pay", p.NetPay)
}
