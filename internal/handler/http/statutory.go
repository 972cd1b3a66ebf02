package http

import (
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/handler/http/response"
)

type StatutoryHandler interface {
	ListBrackets(w http.ResponseWriter, r *http.Request)
}

type statutoryHandlerImpl struct {
	statutoryService statutory.StatutoryService
}

func NewStatutoryHandler(statutoryService statutory.StatutoryService) StatutoryHandler {
	return &statutoryHandlerImpl{statutoryService: statutoryService}
}

func (h *statutoryHandlerImpl) ListBrackets(w http.ResponseWriter, r *http.Request) {
	result, err := h.statutoryService.ListBrackets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
