package handlers

import (
	"net/http"

	"ATHLETEHUB_BACK-END/internal/dto"
	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/utils"
)

// AthleteHandler serves the public athlete directory
type AthleteHandler struct {
	profiles *service.ProfileService
	log      logger.Logger
}

func NewAthleteHandler(profiles *service.ProfileService, log logger.Logger) *AthleteHandler {
	return &AthleteHandler{profiles: profiles, log: log}
}

// List godoc
// @Summary      Search athletes
// @Description  Case-insensitive substring search on name, sport and position. Filters are combined.
// @Tags         athletes
// @Produce      json
// @Param        search    query     string  false  "Name contains"
// @Param        sport     query     string  false  "Sport contains"
// @Param        position  query     string  false  "Position contains"
// @Success      200       {array}   dto.AthleteResponse
// @Router       /api/athletes [get]
func (h *AthleteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	athletes, err := h.profiles.Search(r.Context(), service.SearchFilter{
		Search:   q.Get("search"),
		Sport:    q.Get("sport"),
		Position: q.Get("position"),
	})
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAthleteListResponse(athletes))
}

// Get godoc
// @Summary      Get athlete by id
// @Tags         athletes
// @Produce      json
// @Param        id   path      string  true  "Athlete id"
// @Success      200  {object}  dto.AthleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/athletes/{id} [get]
func (h *AthleteHandler) Get(w http.ResponseWriter, r *http.Request) {
	athlete, err := h.profiles.GetAthlete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAthleteResponse(athlete))
}

// Stats godoc
// @Summary      Platform stats
// @Description  Total athletes and total linked videos
// @Tags         athletes
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/athletes/stats/public [get]
func (h *AthleteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.profiles.GetStats(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatsResponse{Athletes: stats.Athletes, Videos: stats.Videos})
}
