package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
)

type ScanHandler struct {
	ingestService *service.IngestService
}

func NewScanHandler(ingestService *service.IngestService) *ScanHandler {
	return &ScanHandler{ingestService: ingestService}
}

// SubmitResponse is returned on a fully ingested batch.
type SubmitResponse struct {
	Status    string `json:"status"`
	Processed int    `json:"processed"`
}

// ValidationErrorResponse enumerates every failing scan by batch index so
// the scanner page can report all problems in one round-trip.
type ValidationErrorResponse struct {
	Status string               `json:"status"`
	Errors []service.ScanErrors `json:"errors"`
}

// Submit ingests one scan object or an array of them. Validation always
// runs before any write; a batch with validation failures is rejected
// wholesale with per-index messages.
func (h *ScanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("scan.Submit: failed to read body")
		writeError(w, http.StatusBadRequest, "Unable to read request body")
		return
	}

	raws, err := decodeScans(body)
	if err != nil {
		log.Error().Err(err).Msg("scan.Submit: invalid JSON body")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if failures := h.ingestService.ValidateBatch(raws); len(failures) > 0 {
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Status: "error",
			Errors: failures,
		})
		return
	}

	processed, err := h.ingestService.Ingest(r.Context(), raws)
	if err != nil {
		log.Error().Err(err).Msg("scan.Submit: ingest failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{Status: "success", Processed: processed})
}

// decodeScans accepts either a single scan object or an array of them.
func decodeScans(body []byte) ([]map[string]any, error) {
	var single map[string]any
	if err := json.Unmarshal(body, &single); err == nil {
		return []map[string]any{single}, nil
	}

	var batch []map[string]any
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}
