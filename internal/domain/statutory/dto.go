package statutory

import "github.com/shopspring/decimal"

type DeductionsResponse struct {
	EPFEmployee     decimal.Decimal `json:"epf_employee"`
	EPFEmployer     decimal.Decimal `json:"epf_employer"`
	SOCSOEmployee   decimal.Decimal `json:"socso_employee"`
	SOCSOEmployer   decimal.Decimal `json:"socso_employer"`
	EISEmployee     decimal.Decimal `json:"eis_employee"`
	EISEmployer     decimal.Decimal `json:"eis_employer"`
	PCBMTD          decimal.Decimal `json:"pcb_mtd"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

type LocalBracketResponse struct {
	SalaryFloor   decimal.Decimal `json:"salary_floor"`
	SalaryCeiling decimal.Decimal `json:"salary_ceiling"`
	SOCSOEmployee decimal.Decimal `json:"socso_employee"`
	SOCSOEmployer decimal.Decimal `json:"socso_employer"`
	EISEmployee   decimal.Decimal `json:"eis_employee"`
	EISEmployer   decimal.Decimal `json:"eis_employer"`
}

type ForeignBracketResponse struct {
	SalaryFloor          decimal.Decimal `json:"salary_floor"`
	SalaryCeiling        decimal.Decimal `json:"salary_ceiling"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
}

type BracketScheduleResponse struct {
	PCBMethod string                   `json:"pcb_method"`
	Local     []LocalBracketResponse   `json:"local"`
	Foreign   []ForeignBracketResponse `json:"foreign"`
}
