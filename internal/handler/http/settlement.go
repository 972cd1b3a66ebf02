package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/settlement"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettlementHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	GetSettlementPDF(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

func (h *settlementHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	var req settlement.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.Settle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker settled", result)
}

func (h *settlementHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	result, err := h.settlementService.GetSettlement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSettlements handles GET /settlements?worker_id=&status=&limit=
func (h *settlementHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	filter := settlement.ListSettlementsFilter{
		WorkerID: queryString(r, "worker_id"),
		Status:   queryString(r, "status"),
	}

	limit, ok := queryInt(r, "limit")
	if !ok {
		response.BadRequest(w, "invalid limit parameter", nil)
		return
	}
	if limit != nil {
		filter.Limit = *limit
	}

	result, err := h.settlementService.ListSettlements(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) GetSettlementPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	content, err := h.settlementService.RenderSettlementPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, fmt.Sprintf("settlement-%s.pdf", id), content)
}
