package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
)

type TeamHandler struct {
	teamService  *service.TeamService
	statsService *service.StatsService
}

func NewTeamHandler(teamService *service.TeamService, statsService *service.StatsService) *TeamHandler {
	return &TeamHandler{teamService: teamService, statsService: statsService}
}

// List returns the teams at an event with their pit-scout status.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		compCode = service.TestingEvent
	}

	teams, err := h.teamService.ListEvent(r.Context(), compCode)
	if err != nil {
		log.Error().Err(err).Str("compCode", compCode).Msg("team.List: failed to list event teams")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, teams)
}

// Get returns the team page bundle: descriptive data plus match and human
// player records. The team row is created if it does not exist yet.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamNumber, compCode, ok := teamParams(w, r)
	if !ok {
		return
	}

	page, err := h.teamService.GetPage(r.Context(), teamNumber, compCode)
	if err != nil {
		log.Error().Err(err).Int("teamNumber", teamNumber).Msg("team.Get: failed to load team page")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// PitDataRequest is the pit-scouting form body.
type PitDataRequest struct {
	RobotPicture     string `json:"robotPicture"`
	Drivetrain       string `json:"drivetrain"`
	Weight           int    `json:"weight"`
	Length           int    `json:"length"`
	Width            int    `json:"width"`
	IntakeDesign     string `json:"intakeDesign"`
	IntakeLocations  string `json:"intakeLocations"`
	ScoringLocations string `json:"scoringLocations"`
	CagePositions    string `json:"cagePositions"`
	UnderShallow     bool   `json:"underShallow"`
	AlgaePicker      bool   `json:"algaePicker"`
	AutoPositions    string `json:"autoPositions"`
	AutoLeave        string `json:"autoLeave"`
	AutoAlgaeMax     int    `json:"autoAlgaeMax"`
	AutoCoralMax     int    `json:"autoCoralMax"`
	AdditionalInfo   string `json:"additionalInfo"`
}

// UpdatePit overwrites a team's descriptive fields from the pit form and
// marks it pit scouted.
func (h *TeamHandler) UpdatePit(w http.ResponseWriter, r *http.Request) {
	teamNumber, compCode, ok := teamParams(w, r)
	if !ok {
		return
	}

	var req PitDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("team.UpdatePit: invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	team, err := h.teamService.UpdatePitData(r.Context(), &domain.Team{
		TeamNumber:       teamNumber,
		CompCode:         compCode,
		RobotPicture:     req.RobotPicture,
		Drivetrain:       req.Drivetrain,
		Weight:           req.Weight,
		Length:           req.Length,
		Width:            req.Width,
		IntakeDesign:     req.IntakeDesign,
		IntakeLocations:  req.IntakeLocations,
		ScoringLocations: req.ScoringLocations,
		CagePositions:    req.CagePositions,
		UnderShallow:     req.UnderShallow,
		AlgaePicker:      req.AlgaePicker,
		AutoPositions:    req.AutoPositions,
		AutoLeave:        req.AutoLeave,
		AutoAlgaeMax:     req.AutoAlgaeMax,
		AutoCoralMax:     req.AutoCoralMax,
		AdditionalInfo:   req.AdditionalInfo,
	})
	if err != nil {
		log.Error().Err(err).Int("teamNumber", teamNumber).Msg("team.UpdatePit: failed to update pit data")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, team)
}

// HumanPlayerRequest is the human-player scouting form body.
type HumanPlayerRequest struct {
	MatchNumber int    `json:"matchNumber"`
	Comment     string `json:"comment"`
}

// AddHumanPlayer appends one human-player observation.
func (h *TeamHandler) AddHumanPlayer(w http.ResponseWriter, r *http.Request) {
	teamNumber, compCode, ok := teamParams(w, r)
	if !ok {
		return
	}

	var req HumanPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("team.AddHumanPlayer: invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	record := &domain.HumanPlayerRecord{
		TeamNumber:  teamNumber,
		CompCode:    compCode,
		MatchNumber: req.MatchNumber,
		Comment:     req.Comment,
	}
	if err := h.teamService.AddHumanPlayerRecord(r.Context(), record); err != nil {
		log.Error().Err(err).Int("teamNumber", teamNumber).Msg("team.AddHumanPlayer: failed to create record")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// GetPath returns the raw path trace recorded for one match.
func (h *TeamHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	teamNumber, compCode, ok := teamParams(w, r)
	if !ok {
		return
	}

	matchNumber, err := strconv.Atoi(r.URL.Query().Get("match"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Match number required")
		return
	}

	path, err := h.teamService.GetPath(r.Context(), teamNumber, compCode, matchNumber)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			writeError(w, http.StatusNotFound, "Match data not found")
			return
		}
		log.Error().Err(err).Int("teamNumber", teamNumber).Msg("team.GetPath: failed to load path")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(path)
}

// Stats returns the team's summary for one match type.
func (h *TeamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	teamNumber, compCode, ok := teamParams(w, r)
	if !ok {
		return
	}

	quantifier := domain.Quantifier(r.URL.Query().Get("quantifier"))
	if quantifier == "" {
		quantifier = domain.QuantifierQualification
	}

	stats, err := h.statsService.Summarize(r.Context(), teamNumber, compCode, quantifier)
	if err != nil {
		log.Error().Err(err).Int("teamNumber", teamNumber).Msg("team.Stats: failed to summarize")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// teamParams pulls the team number from the route and the competition code
// from the query, writing the error response itself when either is missing.
func teamParams(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	teamNumber, err := strconv.Atoi(chi.URLParam(r, "teamNumber"))
	if err != nil || teamNumber <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid team number")
		return 0, "", false
	}

	compCode := r.URL.Query().Get("comp")
	if compCode == "" {
		writeError(w, http.StatusBadRequest, "Competition code required")
		return 0, "", false
	}

	return teamNumber, compCode, true
}
