package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadmarket/internal/entity"
	"github.com/xavierca1/leadmarket/internal/infra/http/middleware"
	"github.com/xavierca1/leadmarket/internal/usecase"
)

// WorkflowHandler exposes the moderation endpoints of the approval state
// machine plus the queue of leads waiting on a moderator.
type WorkflowHandler struct {
	ApproveUC  *usecase.ApproveLeadUseCase
	RejectUC   *usecase.RejectLeadUseCase
	ResubmitUC *usecase.ResubmitLeadUseCase
	LeadRepo   entity.LeadRepositoryInterface
}

func NewWorkflowHandler(
	approve *usecase.ApproveLeadUseCase,
	reject *usecase.RejectLeadUseCase,
	resubmit *usecase.ResubmitLeadUseCase,
	leadRepo entity.LeadRepositoryInterface,
) *WorkflowHandler {
	return &WorkflowHandler{
		ApproveUC:  approve,
		RejectUC:   reject,
		ResubmitUC: resubmit,
		LeadRepo:   leadRepo,
	}
}

func (h *WorkflowHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApproverID string `json:"approver_id"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.ApproveUC.Execute(r.Context(), usecase.ApproveLeadInput{
		LeadID:     chi.URLParam(r, "id"),
		ApproverID: body.ApproverID,
		Notes:      body.Notes,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordApprovalTransition(string(output.Status))

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApproverID string `json:"approver_id"`
		Reason     string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.RejectUC.Execute(r.Context(), usecase.RejectLeadInput{
		LeadID:     chi.URLParam(r, "id"),
		ApproverID: body.ApproverID,
		Reason:     body.Reason,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordApprovalTransition(string(output.Status))

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApproverID string `json:"approver_id"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.ResubmitUC.Execute(r.Context(), usecase.ResubmitLeadInput{
		LeadID:     chi.URLParam(r, "id"),
		ApproverID: body.ApproverID,
		Notes:      body.Notes,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordApprovalTransition(string(output.Status))

	writeJSON(w, http.StatusOK, output)
}

// PendingApproval lists the moderation queue: leads still pending plus the
// ones already pulled into review.
func (h *WorkflowHandler) PendingApproval(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	var queue []*entity.Lead
	for _, status := range []entity.ApprovalStatus{entity.ApprovalPending, entity.ApprovalUnderReview} {
		leads, err := h.LeadRepo.List(r.Context(), entity.LeadFilter{
			VendorID:       vendorID,
			ApprovalStatus: status,
		})
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar leads")
			return
		}
		queue = append(queue, leads...)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(queue),
		"leads": queue,
	})
}
