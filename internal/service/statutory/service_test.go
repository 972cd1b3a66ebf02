package statutory

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBrackets(t *testing.T) {
	s := seedSchedule(t)
	repo := &fakeBracketRepository{
		listLocalFn:   func(context.Context) ([]statutory.LocalBracket, error) { return s.Local, nil },
		listForeignFn: func(context.Context) ([]statutory.ForeignBracket, error) { return s.Foreign, nil },
	}
	svc := NewStatutoryService(repo, ProgressiveTax{})

	resp, err := svc.ListBrackets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "progressive", resp.PCBMethod)
	assert.Len(t, resp.Local, len(s.Local))
	assert.Len(t, resp.Foreign, len(s.Foreign))
	assertAmount(t, "0.40", resp.Foreign[0].EmployerContribution, "first foreign row")
}

func TestListBrackets_EmptyTablesAreEmptySlices(t *testing.T) {
	svc := NewStatutoryService(&fakeBracketRepository{}, SimplifiedTax{})

	resp, err := svc.ListBrackets(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, resp.Local)
	assert.NotNil(t, resp.Foreign)
	assert.Empty(t, resp.Local)
}

func TestListBrackets_Error(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeBracketRepository{
		listForeignFn: func(context.Context) ([]statutory.ForeignBracket, error) { return nil, boom },
	}
	svc := NewStatutoryService(repo, SimplifiedTax{})

	_, err := svc.ListBrackets(context.Background())
	assert.ErrorIs(t, err, boom)
}
