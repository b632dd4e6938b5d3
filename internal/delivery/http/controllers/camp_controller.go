package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"corecodecamp/internal/delivery/http/helpers"
	"corecodecamp/internal/domain"
)

// CampListSuccessResponse is the success response envelope for camp list endpoints (200).
type CampListSuccessResponse struct {
	Data  []CampModel       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CampSuccessResponse is the success response envelope for single camp endpoints (200/201).
type CampSuccessResponse struct {
	Data  CampModel         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkListSuccessResponse is the success response envelope for GET /api/camps/{moniker}/talks (200).
type TalkListSuccessResponse struct {
	Data  []TalkModel       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkSuccessResponse is the success response envelope for GET /api/camps/{moniker}/talks/{talkID} (200).
type TalkSuccessResponse struct {
	Data  TalkModel         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteCampResponse is the data payload for DELETE /api/camps/{moniker} (200).
type DeleteCampResponse struct {
	Status string `json:"status"`
}

// DeleteCampSuccessResponse is the success response envelope for DELETE /api/camps/{moniker} (200).
type DeleteCampSuccessResponse struct {
	Data  DeleteCampResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type CampController struct {
	Logger  *slog.Logger
	Service domain.CampService
}

func NewCampController(logger *slog.Logger, svc domain.CampService) *CampController {
	return &CampController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps a service error to its HTTP status. notFound is the message used for ErrNotFound.
func (c *CampController) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	case errors.Is(err, domain.ErrMonikerTaken):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "moniker in use")
	case errors.Is(err, domain.ErrNoChanges):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "no changes were saved")
	case errors.Is(err, domain.ErrCampHasTalks):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "camp still has talks and cannot be deleted")
	case errors.Is(err, domain.ErrEndBeforeStart):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "end_date must not be before start_date")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid camp")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStorageFailure(w)
	}
}

// ListCamps godoc
// @Summary List camps
// @Description Returns all camps. Talks (with speakers) are included only when includeTalks is true.
// @Tags camps
// @Produce json
// @Param includeTalks query bool false "Include talks" default(false)
// @Success 200 {object} controllers.CampListSuccessResponse "data contains the camps"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps [get]
func (c *CampController) ListCamps(w http.ResponseWriter, r *http.Request) {
	includeTalks, err := helpers.ParseBoolQuery(r, "includeTalks", false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camps, err := c.Service.ListCamps(r.Context(), includeTalks)
	if err != nil {
		c.writeServiceError(w, r, err, "camps not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewCampModels(camps, includeTalks))
}

// SearchCamps godoc
// @Summary Search camps by date
// @Description Returns the camps running on the given date. Responds 404 when no camp matches.
// @Tags camps
// @Produce json
// @Param theDate query string true "Date (YYYY-MM-DD)"
// @Param includeTalks query bool false "Include talks" default(false)
// @Success 200 {object} controllers.CampListSuccessResponse "data contains the matching camps"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/search [get]
func (c *CampController) SearchCamps(w http.ResponseWriter, r *http.Request) {
	date, err := helpers.ParseDateQuery(r, "theDate")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	includeTalks, err := helpers.ParseBoolQuery(r, "includeTalks", false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camps, err := c.Service.SearchCampsByDate(r.Context(), date, includeTalks)
	if err != nil {
		c.writeServiceError(w, r, err, "no camps on that date")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewCampModels(camps, includeTalks))
}

// GetCamp godoc
// @Summary Get a camp by moniker
// @Tags camps
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param includeTalks query bool false "Include talks" default(false)
// @Success 200 {object} controllers.CampSuccessResponse "data contains the camp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/{moniker} [get]
func (c *CampController) GetCamp(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if moniker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing moniker")
		return
	}
	includeTalks, err := helpers.ParseBoolQuery(r, "includeTalks", false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	camp, err := c.Service.GetCamp(r.Context(), moniker, includeTalks)
	if err != nil {
		c.writeServiceError(w, r, err, "camp not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewCampModel(camp, includeTalks))
}

// CreateCamp godoc
// @Summary Create a camp
// @Description Creates a camp. The moniker must be unused and usable as a URL path segment. The Location header points at the new camp.
// @Tags camps
// @Accept json
// @Produce json
// @Param camp body CampModel true "Camp"
// @Success 201 {object} controllers.CampSuccessResponse "data contains the created camp"
// @Header 201 {string} Location "/api/camps/{moniker}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps [post]
func (c *CampController) CreateCamp(w http.ResponseWriter, r *http.Request) {
	var req CampModel
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	location, ok := CampLocation(req.Moniker)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not use current moniker")
		return
	}
	camp := req.ToCamp()
	if err := c.Service.CreateCamp(r.Context(), camp); err != nil {
		c.writeServiceError(w, r, err, "camp not found")
		return
	}
	helpers.WriteCreated(w, location, NewCampModel(camp, false))
}

// UpdateCamp godoc
// @Summary Update a camp
// @Description Overwrites the fields present in the body; omitted fields are unchanged. The moniker cannot be changed.
// @Tags camps
// @Accept json
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param camp body UpdateCampRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.CampSuccessResponse "data contains the updated camp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/{moniker} [put]
func (c *CampController) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if moniker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing moniker")
		return
	}
	var req UpdateCampRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.Moniker != nil && *req.Moniker != moniker {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "moniker cannot be changed")
		return
	}
	camp, err := c.Service.UpdateCamp(r.Context(), moniker, req.Patch())
	if err != nil {
		c.writeServiceError(w, r, err, "could not find camp with moniker of "+moniker)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewCampModel(camp, false))
}

// DeleteCamp godoc
// @Summary Delete a camp
// @Description Deletes a camp that has no talks.
// @Tags camps
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Success 200 {object} controllers.DeleteCampSuccessResponse "data.status confirms deletion"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/{moniker} [delete]
func (c *CampController) DeleteCamp(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if moniker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing moniker")
		return
	}
	if err := c.Service.DeleteCamp(r.Context(), moniker); err != nil {
		c.writeServiceError(w, r, err, "could not find camp with moniker of "+moniker)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteCampResponse{Status: "camp deleted"})
}

// ListTalks godoc
// @Summary List the talks of a camp
// @Tags talks
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Success 200 {object} controllers.TalkListSuccessResponse "data contains the talks"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/{moniker}/talks [get]
func (c *CampController) ListTalks(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if moniker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing moniker")
		return
	}
	talks, err := c.Service.ListTalks(r.Context(), moniker)
	if err != nil {
		c.writeServiceError(w, r, err, "camp not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewTalkModels(talks))
}

// GetTalk godoc
// @Summary Get a talk of a camp
// @Tags talks
// @Produce json
// @Param moniker path string true "Camp moniker"
// @Param talkID path int true "Talk ID"
// @Success 200 {object} controllers.TalkSuccessResponse "data contains the talk"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/camps/{moniker}/talks/{talkID} [get]
func (c *CampController) GetTalk(w http.ResponseWriter, r *http.Request) {
	moniker := r.PathValue("moniker")
	if moniker == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing moniker")
		return
	}
	talkID, err := strconv.ParseInt(r.PathValue("talkID"), 10, 64)
	if err != nil || talkID < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "talkID must be a positive integer")
		return
	}
	talk, err := c.Service.GetTalk(r.Context(), moniker, talkID)
	if err != nil {
		c.writeServiceError(w, r, err, "talk not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewTalkModel(talk))
}
