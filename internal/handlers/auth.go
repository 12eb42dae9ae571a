package handlers

import (
	"net/http"

	"ATHLETEHUB_BACK-END/internal/dto"
	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	profiles       *service.ProfileService
	log            logger.Logger
	maxUploadBytes int64
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(profiles *service.ProfileService, log logger.Logger, maxUploadBytes int64) *AuthHandler {
	return &AuthHandler{profiles: profiles, log: log, maxUploadBytes: maxUploadBytes}
}

// Register handles athlete registration
// @Summary Register a new athlete
// @Description Create an athlete account. Accepts JSON, urlencoded or multipart/form-data with an optional profilePhoto file.
// @Tags authentication
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param request body dto.RegisterRequest true "Athlete registration data"
// @Success 201 {object} dto.AuthResponse "Athlete created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 400 {object} dto.ErrorResponse "User already exists"
// @Failure 502 {object} dto.ErrorResponse "Photo upload failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseRegister(w, r)
	if err != nil {
		writeBadRequest(r.Context(), w, h.log, err)
		return
	}

	res, err := h.profiles.Register(r.Context(), in)
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		AthleteResponse: dto.NewAthleteResponse(res.Athlete),
		Token:           res.Token,
	})
}

func (h *AuthHandler) parseRegister(w http.ResponseWriter, r *http.Request) (service.RegisterInput, error) {
	if !isForm(r) {
		var req dto.RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			return service.RegisterInput{}, err
		}
		return service.RegisterInput{
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
		return service.RegisterInput{}, err
	}
	age, err := formInt(r, "age")
	if err != nil {
		return service.RegisterInput{}, err
	}
	photo, err := readPhoto(r, h.maxUploadBytes)
	if err != nil {
		return service.RegisterInput{}, err
	}

	in := service.RegisterInput{
		Name:         formText(r, "name"),
		Email:        formText(r, "email"),
		Password:     formText(r, "password"),
		Sport:        formText(r, "sport"),
		Position:     formText(r, "position"),
		Location:     formText(r, "location"),
		Achievements: formText(r, "achievements"),
		Contact:      formText(r, "contact"),
		Photo:        photo,
	}
	if age != nil {
		in.Age = *age
	}
	return in, nil
}

// Login handles athlete login
// @Summary Login athlete
// @Description Authenticate athlete with email and password
// @Tags authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := h.decode(w, r, &req, func() {
		req.Email = formText(r, "email")
		req.Password = formText(r, "password")
	}); err != nil {
		writeBadRequest(r.Context(), w, h.log, err)
		return
	}

	res, err := h.profiles.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		AthleteResponse: dto.NewAthleteResponse(res.Athlete),
		Token:           res.Token,
	})
}

// ResetPassword resets a password using the athlete's public id
// @Summary Reset password
// @Description Set a new password when email and athleteID match
// @Tags authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset payload"
// @Success 200 {object} dto.MessageResponse "Password updated"
// @Failure 401 {object} dto.ErrorResponse "Invalid AthleteID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := h.decode(w, r, &req, func() {
		req.Email = formText(r, "email")
		req.AthleteID = formText(r, "athleteID")
		req.NewPassword = formText(r, "newPassword")
	}); err != nil {
		writeBadRequest(r.Context(), w, h.log, err)
		return
	}

	if err := h.profiles.ResetPassword(r.Context(), req.Email, req.AthleteID, req.NewPassword); err != nil {
		writeServiceError(r.Context(), w, h.log, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// decode reads a JSON body into dst, or parses a form body and runs fromForm.
func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, dst any, fromForm func()) error {
	if !isForm(r) {
		return decodeJSON(r, dst)
	}
	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		return err
	}
	fromForm()
	return nil
}
