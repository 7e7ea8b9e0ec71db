package http

import (
	"net/http"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/service"
)

type BinHandler struct {
	binSvc service.BinService
}

func NewBinHandler(binSvc service.BinService) *BinHandler {
	return &BinHandler{binSvc: binSvc}
}

func (h *BinHandler) GetBin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid bin id")
		return
	}

	bin, err := h.binSvc.GetBin(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bin)
}

func (h *BinHandler) ResolveQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode := r.URL.Query().Get("code")
	if qrCode == "" {
		writeBadRequest(w, "code query parameter is required")
		return
	}

	bin, err := h.binSvc.ResolveQRCode(r.Context(), qrCode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bin)
}

func (h *BinHandler) ListBins(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	status := r.URL.Query().Get("status")

	bins, total, err := h.binSvc.ListBins(r.Context(), status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bins":  bins,
		"total": total,
		"page":  page,
	})
}

func (h *BinHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid bin id")
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		writeBadRequest(w, "category query parameter is required")
		return
	}

	eligible, reason, err := h.binSvc.CheckEligibility(r.Context(), id, category)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"eligible": eligible,
		"reason":   reason,
	})
}

func (h *BinHandler) CreateBin(w http.ResponseWriter, r *http.Request) {
	var bin domain.Bin
	if !decodeBody(w, r, &bin) {
		return
	}
	if bin.Name == "" || bin.QRCode == "" {
		writeBadRequest(w, "name and qr_code are required")
		return
	}

	if err := h.binSvc.CreateBin(r.Context(), &bin); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bin)
}

func (h *BinHandler) UpdateBin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid bin id")
		return
	}

	var bin domain.Bin
	if !decodeBody(w, r, &bin) {
		return
	}
	bin.ID = id

	if err := h.binSvc.UpdateBin(r.Context(), &bin); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bin)
}

func (h *BinHandler) DeleteBin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid bin id")
		return
	}

	if err := h.binSvc.DeleteBin(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type updateBinStatusRequest struct {
	Status    string `json:"status"`
	FillLevel int32  `json:"fill_level"`
}

func (h *BinHandler) UpdateBinStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid bin id")
		return
	}

	var req updateBinStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.binSvc.UpdateBinStatus(r.Context(), id, req.Status, req.FillLevel); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
