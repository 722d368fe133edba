package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type VendorHandler struct {
	VendorRepo entity.VendorRepositoryInterface
}

func NewVendorHandler(vendorRepo entity.VendorRepositoryInterface) *VendorHandler {
	return &VendorHandler{VendorRepo: vendorRepo}
}

type RegisterVendorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name,omitempty"`
}

func (h *VendorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	vendor, err := entity.NewVendor(req.Name, req.Email)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INPUT", err.Error())
		return
	}
	vendor.CompanyName = req.CompanyName

	if err := h.VendorRepo.Create(r.Context(), vendor); err != nil {
		writeErrorResponse(w, http.StatusConflict, "DUPLICATE", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, vendor)
}

func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	vendor, err := h.VendorRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrVendorNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "vendor not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao buscar vendor")
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}
