package statutory

import (
	"context"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
)

type StatutoryServiceImpl struct {
	brackets statutory.BracketRepository
	tax      statutory.TaxPolicy
}

func NewStatutoryService(brackets statutory.BracketRepository, tax statutory.TaxPolicy) statutory.StatutoryService {
	return &StatutoryServiceImpl{brackets: brackets, tax: tax}
}

func (s *StatutoryServiceImpl) ListBrackets(ctx context.Context) (statutory.BracketScheduleResponse, error) {
	local, err := s.brackets.ListLocal(ctx)
	if err != nil {
		return statutory.BracketScheduleResponse{}, err
	}
	foreign, err := s.brackets.ListForeign(ctx)
	if err != nil {
		return statutory.BracketScheduleResponse{}, err
	}

	resp := statutory.BracketScheduleResponse{
		PCBMethod: s.tax.Name(),
		Local:     make([]statutory.LocalBracketResponse, 0, len(local)),
		Foreign:   make([]statutory.ForeignBracketResponse, 0, len(foreign)),
	}
	for _, b := range local {
		resp.Local = append(resp.Local, statutory.LocalBracketResponse{
			SalaryFloor:   b.SalaryFloor,
			SalaryCeiling: b.SalaryCeiling,
			SOCSOEmployee: b.SOCSOEmployee,
			SOCSOEmployer: b.SOCSOEmployer,
			EISEmployee:   b.EISEmployee,
			EISEmployer:   b.EISEmployer,
		})
	}
	for _, b := range foreign {
		resp.Foreign = append(resp.Foreign, statutory.ForeignBracketResponse{
			SalaryFloor:          b.SalaryFloor,
			SalaryCeiling:        b.SalaryCeiling,
			EmployerContribution: b.EmployerContribution,
		})
	}

	return resp, nil
}
