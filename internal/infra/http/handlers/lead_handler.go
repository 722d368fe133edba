package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadmarket/internal/entity"
	"github.com/xavierca1/leadmarket/internal/infra/http/middleware"
	"github.com/xavierca1/leadmarket/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC      *usecase.CreateLeadUseCase
	ValidateLeadUC    *usecase.ValidateLeadUseCase
	BulkUpdateUC      *usecase.BulkUpdateLeadsUseCase
	BulkImportUC      *usecase.BulkImportLeadsUseCase
	PipelineSummaryUC *usecase.PipelineSummaryUseCase
	LeadRepo          entity.LeadRepositoryInterface
	Scorer            *usecase.ScoringEngine
	rateLimiter       *RateLimiter
}

func NewLeadHandler(
	createLead *usecase.CreateLeadUseCase,
	validateLead *usecase.ValidateLeadUseCase,
	bulkUpdate *usecase.BulkUpdateLeadsUseCase,
	bulkImport *usecase.BulkImportLeadsUseCase,
	pipelineSummary *usecase.PipelineSummaryUseCase,
	leadRepo entity.LeadRepositoryInterface,
	scorer *usecase.ScoringEngine,
) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC:      createLead,
		ValidateLeadUC:    validateLead,
		BulkUpdateUC:      bulkUpdate,
		BulkImportUC:      bulkImport,
		PipelineSummaryUC: pipelineSummary,
		LeadRepo:          leadRepo,
		Scorer:            scorer,
		rateLimiter:       NewRateLimiter(60, time.Minute), // 60 req/min por IP
	}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMIT", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadScored(output.QualityGrade)
	middleware.RecordLeadValidation(string(output.ValidationStatus))

	writeJSON(w, http.StatusCreated, output)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if err != nil {
		switch err {
		case entity.ErrInvalidLeadID:
			writeErrorResponse(w, http.StatusBadRequest, "INPUT", "invalid lead id format")
		case entity.ErrLeadNotFound:
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "lead not found")
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao buscar lead")
		}
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Score recomputes the quality score from the stored fields. Nothing is
// persisted; lead_score is never ground truth.
func (h *LeadHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if err != nil {
		switch err {
		case entity.ErrInvalidLeadID:
			writeErrorResponse(w, http.StatusBadRequest, "INPUT", "invalid lead id format")
		case entity.ErrLeadNotFound:
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "lead not found")
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao buscar lead")
		}
		return
	}

	result := h.Scorer.Score(lead)
	middleware.RecordLeadScored(result.QualityGrade)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lead_id": lead.ID,
		"score":   result,
	})
}

func (h *LeadHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	// An empty body is fine here; notes are optional.
	json.NewDecoder(r.Body).Decode(&body)

	input := usecase.ValidateLeadInput{
		LeadID: chi.URLParam(r, "id"),
		Notes:  body.Notes,
	}

	output, err := h.ValidateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadValidation(string(output.Status))

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.BulkUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.BulkUpdateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	var input usecase.BulkImportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.BulkImportUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) PipelineSummary(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	summary, err := h.PipelineSummaryUC.Execute(r.Context(), vendorID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
