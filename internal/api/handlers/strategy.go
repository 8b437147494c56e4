package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
)

type StrategyHandler struct {
	statsService    *service.StatsService
	pickListService *service.PickListService
}

func NewStrategyHandler(statsService *service.StatsService, pickListService *service.PickListService) *StrategyHandler {
	return &StrategyHandler{statsService: statsService, pickListService: pickListService}
}

// Rankings returns qualification summaries for every team at the event.
func (h *StrategyHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		writeError(w, http.StatusBadRequest, "Competition code required")
		return
	}

	summaries, err := h.statsService.SummarizeEvent(r.Context(), compCode)
	if err != nil {
		log.Error().Err(err).Str("compCode", compCode).Msg("strategy.Rankings: failed to summarize event")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Dashboard returns alliance summaries for one upcoming qualification match.
func (h *StrategyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		writeError(w, http.StatusBadRequest, "Competition code required")
		return
	}

	matchNumber, err := strconv.Atoi(r.URL.Query().Get("match"))
	if err != nil || matchNumber <= 0 {
		writeError(w, http.StatusBadRequest, "Match number required")
		return
	}

	alliances, err := h.statsService.SummarizeMatch(r.Context(), compCode, matchNumber)
	if err != nil {
		if errors.Is(err, service.ErrScheduleUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "Match schedule unavailable")
			return
		}
		log.Error().Err(err).Str("compCode", compCode).Int("match", matchNumber).
			Msg("strategy.Dashboard: failed to summarize match")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, alliances)
}

// PollPickList answers the pick-list polling protocol. The client passes
// its last-known timestamp; the response is no_data, no_change, or updated
// with the payload.
func (h *StrategyHandler) PollPickList(w http.ResponseWriter, r *http.Request) {
	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		writeError(w, http.StatusBadRequest, "Competition code required")
		return
	}

	clientTimestamp := int64(0)
	if ts := r.URL.Query().Get("timestamp"); ts != "" {
		parsed, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid timestamp")
			return
		}
		clientTimestamp = parsed
	}

	result, err := h.pickListService.Poll(r.Context(), compCode, clientTimestamp)
	if err != nil {
		log.Error().Err(err).Str("compCode", compCode).Msg("strategy.PollPickList: poll failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SavePickListResponse acknowledges a save with the file's new timestamp.
type SavePickListResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// SavePickList persists the five tier lists: file always, database row only
// when save_to_db is set.
func (h *StrategyHandler) SavePickList(w http.ResponseWriter, r *http.Request) {
	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		writeError(w, http.StatusBadRequest, "Competition code required")
		return
	}

	saveToDB, _ := strconv.ParseBool(r.URL.Query().Get("save_to_db"))

	var tiers domain.TierLists
	if err := json.NewDecoder(r.Body).Decode(&tiers); err != nil {
		log.Error().Err(err).Msg("strategy.SavePickList: invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	timestamp, err := h.pickListService.Save(r.Context(), compCode, tiers, saveToDB)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTierLists) {
			writeError(w, http.StatusBadRequest, domain.ErrInvalidTierLists.Error())
			return
		}
		log.Error().Err(err).Str("compCode", compCode).Msg("strategy.SavePickList: save failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, SavePickListResponse{Status: "success", Timestamp: timestamp})
}
