package statutory

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const scheduleFileVersion = 1

type scheduleFile struct {
	Version int                   `yaml:"version"`
	Local   []localBracketEntry   `yaml:"local"`
	Foreign []foreignBracketEntry `yaml:"foreign"`
}

type localBracketEntry struct {
	Floor         decimal.Decimal `yaml:"floor"`
	Ceiling       decimal.Decimal `yaml:"ceiling"`
	SOCSOEmployee decimal.Decimal `yaml:"socso_employee"`
	SOCSOEmployer decimal.Decimal `yaml:"socso_employer"`
	EISEmployee   decimal.Decimal `yaml:"eis_employee"`
	EISEmployer   decimal.Decimal `yaml:"eis_employer"`
}

type foreignBracketEntry struct {
	Floor                decimal.Decimal `yaml:"floor"`
	Ceiling              decimal.Decimal `yaml:"ceiling"`
	EmployerContribution decimal.Decimal `yaml:"employer_contribution"`
}

// Schedule is a parsed pair of contribution tables.
type Schedule struct {
	Local   []statutory.LocalBracket
	Foreign []statutory.ForeignBracket
}

// LoadSchedule reads and validates a bracket seed file.
func LoadSchedule(path string) (Schedule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("read bracket schedule: %w", err)
	}
	return ParseSchedule(b)
}

func ParseSchedule(b []byte) (Schedule, error) {
	var f scheduleFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Schedule{}, fmt.Errorf("%w: %v", statutory.ErrInvalidSchedule, err)
	}
	if f.Version != scheduleFileVersion {
		return Schedule{}, fmt.Errorf("%w: unsupported version %d", statutory.ErrInvalidSchedule, f.Version)
	}

	var s Schedule
	for _, e := range f.Local {
		s.Local = append(s.Local, statutory.LocalBracket{
			SalaryFloor:   e.Floor,
			SalaryCeiling: e.Ceiling,
			SOCSOEmployee: e.SOCSOEmployee,
			SOCSOEmployer: e.SOCSOEmployer,
			EISEmployee:   e.EISEmployee,
			EISEmployer:   e.EISEmployer,
		})
	}
	for _, e := range f.Foreign {
		s.Foreign = append(s.Foreign, statutory.ForeignBracket{
			SalaryFloor:          e.Floor,
			SalaryCeiling:        e.Ceiling,
			EmployerContribution: e.EmployerContribution,
		})
	}

	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// Validate checks that each table is non-empty, ordered by floor, and free of
// overlapping ranges and negative amounts.
func (s Schedule) Validate() error {
	if len(s.Local) == 0 {
		return fmt.Errorf("%w: local schedule is empty", statutory.ErrInvalidSchedule)
	}
	if len(s.Foreign) == 0 {
		return fmt.Errorf("%w: foreign schedule is empty", statutory.ErrInvalidSchedule)
	}

	for i, b := range s.Local {
		var prev *decimal.Decimal
		if i > 0 {
			prev = &s.Local[i-1].SalaryCeiling
		}
		if err := checkRange("local", i, b.SalaryFloor, b.SalaryCeiling, prev); err != nil {
			return err
		}
		for _, amt := range []decimal.Decimal{b.SOCSOEmployee, b.SOCSOEmployer, b.EISEmployee, b.EISEmployer} {
			if amt.IsNegative() {
				return fmt.Errorf("%w: local row %d has a negative contribution", statutory.ErrInvalidSchedule, i+1)
			}
		}
	}

	for i, b := range s.Foreign {
		var prev *decimal.Decimal
		if i > 0 {
			prev = &s.Foreign[i-1].SalaryCeiling
		}
		if err := checkRange("foreign", i, b.SalaryFloor, b.SalaryCeiling, prev); err != nil {
			return err
		}
		if b.EmployerContribution.IsNegative() {
			return fmt.Errorf("%w: foreign row %d has a negative contribution", statutory.ErrInvalidSchedule, i+1)
		}
	}

	return nil
}

func checkRange(table string, i int, floor, ceiling decimal.Decimal, prevCeiling *decimal.Decimal) error {
	if floor.IsNegative() || floor.GreaterThan(ceiling) {
		return fmt.Errorf("%w: %s row %d has floor %s above ceiling %s",
			statutory.ErrInvalidSchedule, table, i+1, floor.StringFixed(2), ceiling.StringFixed(2))
	}
	if prevCeiling != nil && !floor.GreaterThan(*prevCeiling) {
		return fmt.Errorf("%w: %s row %d overlaps the previous row",
			statutory.ErrInvalidSchedule, table, i+1)
	}
	return nil
}

// SeedSchedules loads path into the schedule tables when they are empty.
// Stored schedules are left untouched.
func SeedSchedules(ctx context.Context, repo statutory.BracketRepository, path string) error {
	s, err := LoadSchedule(path)
	if err != nil {
		return err
	}

	seeded, err := repo.InsertSchedulesIfEmpty(ctx, s.Local, s.Foreign)
	if err != nil {
		return err
	}
	if !seeded {
		slog.Info("Bracket schedules already present, seed skipped", "path", path)
		return nil
	}

	slog.Info("Bracket schedules seeded", "path", path, "local_rows", len(s.Local), "foreign_rows", len(s.Foreign))
	return nil
}
