package worker

import (
	"context"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return ToWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.ListWorkersFilter) ([]worker.WorkerResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		resp = append(resp, ToWorkerResponse(w))
	}
	return resp, nil
}

func ToWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		Type:          string(w.Type),
		Status:        string(w.Status),
		Age:           w.Age,
		MaritalStatus: w.MaritalStatus,
		ChildrenCount: w.ChildrenCount,
		SpouseWorking: w.SpouseWorking,
		ZakatMonthly:  w.ZakatMonthly,
		EPFNo:         w.EPFNo,
		PermitNo:      w.PermitNo,
	}
}
