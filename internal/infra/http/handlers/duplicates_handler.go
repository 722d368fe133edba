package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xavierca1/leadmarket/internal/infra/http/middleware"
	"github.com/xavierca1/leadmarket/internal/usecase"
)

type DuplicatesHandler struct {
	FindDuplicatesUC  *usecase.FindDuplicatesUseCase
	MergeDuplicatesUC *usecase.MergeDuplicatesUseCase
}

func NewDuplicatesHandler(
	find *usecase.FindDuplicatesUseCase,
	merge *usecase.MergeDuplicatesUseCase,
) *DuplicatesHandler {
	return &DuplicatesHandler{FindDuplicatesUC: find, MergeDuplicatesUC: merge}
}

func (h *DuplicatesHandler) Find(w http.ResponseWriter, r *http.Request) {
	input := usecase.FindDuplicatesInput{
		VendorID: r.URL.Query().Get("vendor_id"),
	}
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "INPUT", "window must be a non-negative integer")
			return
		}
		input.Window = window
	}

	output, err := h.FindDuplicatesUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *DuplicatesHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var input usecase.MergeDuplicatesInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.MergeDuplicatesUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordMerge(output.DeletedCount)

	writeJSON(w, http.StatusOK, output)
}
