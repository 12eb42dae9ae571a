package handlers

import (
	"net/http"

	"ATHLETEHUB_BACK-END/internal/dto"
	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/middleware"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/utils"
)

// ProfileHandler serves the authenticated athlete's own profile and videos.
// Every route is wrapped by middleware.AuthMiddleware.
type ProfileHandler struct {
	profiles       *service.ProfileService
	log            logger.Logger
	maxUploadBytes int64
}

func NewProfileHandler(profiles *service.ProfileService, log logger.Logger, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log, maxUploadBytes: maxUploadBytes}
}

// GetMe godoc
// @Summary      Get my profile
// @Description  Returns the authenticated athlete's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AthleteResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/athletes/profile/me [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing athlete in context")
		return
	}

	athlete, err := h.profiles.GetMyProfile(r.Context(), me.ID)
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAthleteResponse(athlete))
}

// Update godoc
// @Summary      Update my profile
// @Description  Partial update. Fields left out or sent empty keep their value. Accepts JSON, urlencoded or multipart/form-data with an optional profilePhoto file.
// @Tags         profile
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Profile update payload"
// @Success      200      {object}  dto.ProfileUpdateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/athletes/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing athlete in context")
		return
	}

	upd, err := h.parseUpdate(w, r)
	if err != nil {
		writeBadRequest(r.Context(), w, h.log, err)
		return
	}

	athlete, err := h.profiles.UpdateProfile(r.Context(), me.ID, upd)
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}

	// Same token back, nothing is re-signed.
	token, _ := middleware.TokenFromContext(r.Context())
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileUpdateResponse{
		AthleteResponse: dto.NewAthleteResponse(athlete),
		Token:           token,
	})
}

func (h *ProfileHandler) parseUpdate(w http.ResponseWriter, r *http.Request) (service.ProfileUpdate, error) {
	if !isForm(r) {
		var req dto.ProfileUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			return service.ProfileUpdate{}, err
		}
		return service.ProfileUpdate{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			Age:          req.Age,
			Sport:        req.Sport,
			Position:     req.Position,
			Location:     req.Location,
			Achievements: req.Achievements,
			Contact:      req.Contact,
		}, nil
	}

	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		return service.ProfileUpdate{}, err
	}
	age, err := formInt(r, "age")
	if err != nil {
		return service.ProfileUpdate{}, err
	}
	photo, err := readPhoto(r, h.maxUploadBytes)
	if err != nil {
		return service.ProfileUpdate{}, err
	}
	return service.ProfileUpdate{
		Name:         formString(r, "name"),
		Email:        formString(r, "email"),
		Password:     formString(r, "password"),
		Age:          age,
		Sport:        formString(r, "sport"),
		Position:     formString(r, "position"),
		Location:     formString(r, "location"),
		Achievements: formString(r, "achievements"),
		Contact:      formString(r, "contact"),
		Photo:        photo,
	}, nil
}

// AddVideo godoc
// @Summary      Add a video
// @Description  Appends a linked video to the athlete's list
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.AddVideoRequest  true  "Video"
// @Success      201      {array}   models.Video
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/athletes/video [post]
func (h *ProfileHandler) AddVideo(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not found")
		return
	}

	var req dto.AddVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(r.Context(), w, h.log, err)
		return
	}

	videos, err := h.profiles.AddVideo(r.Context(), me.ID, service.VideoInput{
		URL:      req.URL,
		Platform: req.Platform,
		Title:    req.Title,
	})
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, videos)
}

// RemoveVideo godoc
// @Summary      Remove a video
// @Description  Drops a video by id. Unknown ids leave the list unchanged.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {array}   models.Video
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/athletes/video/{videoId} [delete]
func (h *ProfileHandler) RemoveVideo(w http.ResponseWriter, r *http.Request) {
	me, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not found")
		return
	}

	videos, err := h.profiles.RemoveVideo(r.Context(), me.ID, r.PathValue("videoId"))
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, videos)
}
