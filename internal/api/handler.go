package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/service"
)

type Service interface {
	CreatePass(ctx context.Context, input entity.Pass, photo *service.PhotoUpload) (entity.Pass, error)
	UpdatePass(ctx context.Context, input entity.Pass, photo *service.PhotoUpload) (entity.Pass, error)
	DeletePasses(ctx context.Context, ids []uuid.UUID) (deleted, skipped int, err error)
	GetPass(ctx context.Context, id uuid.UUID) (entity.Pass, error)
	PassesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Pass, error)
	GetPassesList(ctx context.Context, filter entity.PassesFilter) ([]entity.Pass, int, error)
	BulkImport(ctx context.Context, rows []entity.ImportRow) (entity.ImportReport, error)
	HistoricalImport(ctx context.Context, rows []entity.ImportRow) (entity.ImportReport, error)
	Stats(ctx context.Context) (entity.PassStats, error)
}

// @title Airport Pass Management API
// @version 1.0
// @description API for issuing and managing airport entry passes.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Description  Returns service status
// @Tags         health
// @Success      200 {string} string "Service is up"
// @Failure      500 {object} ResponseError "Service is down"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is up\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service is down")
	}
}

const maxPhotoMemory = 10 << 20

type PassRequest struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Category     string    `json:"category"`
	CNIC         string    `json:"cnic"`
	Name         string    `json:"name"`
	Designation  string    `json:"designation"`
	Organization string    `json:"organization"`
	AreaAllowed  []string  `json:"areaAllowed"`
	DateOfEntry  string    `json:"dateOfEntry"`
	DateOfExpiry string    `json:"dateOfExpiry"`
}

func (req PassRequest) toPass() (entity.Pass, error) {
	dateOfEntry, err := time.Parse("2006-01-02", req.DateOfEntry)
	if err != nil {
		return entity.Pass{}, fmt.Errorf("invalid dateOfEntry: %s", req.DateOfEntry)
	}

	dateOfExpiry, err := time.Parse("2006-01-02", req.DateOfExpiry)
	if err != nil {
		return entity.Pass{}, fmt.Errorf("invalid dateOfExpiry: %s", req.DateOfExpiry)
	}

	return entity.Pass{
		ID:           req.ID,
		Category:     entity.Category(strings.ToLower(strings.TrimSpace(req.Category))),
		CNIC:         strings.TrimSpace(req.CNIC),
		Name:         strings.TrimSpace(req.Name),
		Designation:  strings.TrimSpace(req.Designation),
		Organization: strings.TrimSpace(req.Organization),
		AreaAllowed:  req.AreaAllowed,
		DateOfEntry:  dateOfEntry,
		DateOfExpiry: dateOfExpiry,
	}, nil
}

// parsePassPayload reads either a plain JSON body or a multipart form with a
// "data" JSON part and an optional "photo" file. The returned closer is nil
// when no photo was attached.
func parsePassPayload(r *http.Request) (entity.Pass, *service.PhotoUpload, func(), error) {
	noop := func() {}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := r.ParseMultipartForm(maxPhotoMemory)
		if err != nil {
			return entity.Pass{}, nil, noop, err
		}

		var req PassRequest

		err = json.Unmarshal([]byte(r.FormValue("data")), &req)
		if err != nil {
			return entity.Pass{}, nil, noop, err
		}

		pass, err := req.toPass()
		if err != nil {
			return entity.Pass{}, nil, noop, err
		}

		file, header, err := r.FormFile("photo")
		if errors.Is(err, http.ErrMissingFile) {
			return pass, nil, noop, nil
		}

		if err != nil {
			return entity.Pass{}, nil, noop, err
		}

		photo := &service.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		}

		return pass, photo, func() { file.Close() }, nil
	}

	var req PassRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return entity.Pass{}, nil, noop, err
	}

	pass, err := req.toPass()
	if err != nil {
		return entity.Pass{}, nil, noop, err
	}

	return pass, nil, noop, nil
}

// CreatePass godoc
// @Summary      Create a pass
// @Description  Allocates the next pass number for the category and creates the record
// @Tags         passes
// @Accept       json
// @Produce      json
// @Param        request body PassRequest true "Pass fields"
// @Success      201 {object} entity.Pass
// @Failure      400 {object} ResponseError "Invalid request body"
// @Failure      409 {object} ResponseError "CNIC or pass number already exists"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes [post]
func (h *Handler) CreatePass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pass, photo, closePhoto, err := parsePassPayload(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	defer closePhoto()

	created, err := h.s.CreatePass(ctx, pass, photo)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "A pass with this CNIC or pass number already exists")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// UpdatePass godoc
// @Summary      Update a pass
// @Description  Replaces editable fields; a category change assigns a new pass number
// @Tags         passes
// @Accept       json
// @Produce      json
// @Param        request body PassRequest true "Pass fields with id"
// @Success      200 {object} entity.Pass
// @Failure      400 {object} ResponseError "Invalid request body"
// @Failure      403 {object} ResponseError "Not an admin or the pass author"
// @Failure      404 {object} ResponseError "No pass with this id"
// @Failure      409 {object} ResponseError "CNIC already exists"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes [put]
func (h *Handler) UpdatePass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pass, photo, closePhoto, err := parsePassPayload(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	defer closePhoto()

	if pass.ID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("id is required"), "Invalid request body")
		return
	}

	updated, err := h.s.UpdatePass(ctx, pass, photo)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "No pass with this id")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "Only an admin or the pass author may edit this pass")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "A pass with this CNIC already exists")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, updated)
}

type DeletePassesRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type DeletePassesResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
	Skipped int    `json:"skipped"`
}

// DeletePasses godoc
// @Summary      Delete passes
// @Description  Deletes the selected passes the user is permitted to delete
// @Tags         passes
// @Accept       json
// @Produce      json
// @Param        request body DeletePassesRequest true "Pass ids"
// @Success      200 {object} DeletePassesResponse
// @Failure      400 {object} ResponseError "Invalid request body"
// @Failure      403 {object} ResponseError "No permitted passes in selection"
// @Failure      404 {object} ResponseError "No matching passes"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes [delete]
func (h *Handler) DeletePasses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeletePassesRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	deleted, skipped, err := h.s.DeletePasses(ctx, req.IDs)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "No matching passes")
			return
		}

		if errors.Is(err, entity.ErrForbidden) {
			SendErr(ctx, w, http.StatusForbidden, err, "You may not delete any of the selected passes")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeletePassesResponse{
		Message: "Passes deleted",
		Deleted: deleted,
		Skipped: skipped,
	})
}

// GetPass godoc
// @Summary      Pass details
// @Description  Returns one pass by id
// @Tags         passes
// @Produce      json
// @Param        id query string true "Pass id"
// @Success      200 {object} entity.Pass
// @Failure      400 {object} ResponseError "Invalid query parameters"
// @Failure      404 {object} ResponseError "No pass with this id"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/details [get]
func (h *Handler) GetPass(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	passID, err := uuid.FromString(r.URL.Query().Get("id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	if passID.IsNil() {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("id must not be empty"), "Invalid query parameters")
		return
	}

	pass, err := h.s.GetPass(ctx, passID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "No pass with this id")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, pass)
}

type PassesBatchResponse struct {
	Passes []entity.Pass `json:"passes"`
}

// PassesBatch godoc
// @Summary      Passes by ids
// @Description  Returns the selected passes, used by the card print page
// @Tags         passes
// @Produce      json
// @Param        ids query string true "Comma-separated pass ids"
// @Success      200 {object} PassesBatchResponse
// @Failure      400 {object} ResponseError "Invalid query parameters"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/batch [get]
func (h *Handler) PassesBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var ids []uuid.UUID

	for _, raw := range strings.Split(r.URL.Query().Get("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		id, err := uuid.FromString(raw)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid id: "+raw)
			return
		}

		ids = append(ids, id)
	}

	passes, err := h.s.PassesByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid query parameters")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, PassesBatchResponse{Passes: passes})
}

type GetPassesListResponse struct {
	TotalPasses int           `json:"totalPasses"`
	Passes      []entity.Pass `json:"passes"`
}

// GetPassesList godoc
// @Summary      Pass registry
// @Description  Returns a page of passes with optional category and search filters
// @Tags         passes
// @Produce      json
// @Param        category query string false "Pass category" Enums(cargo, landside)
// @Param        search query string false "Matches name, CNIC or organization"
// @Param        limit query string false "Page size"
// @Param        page query string false "Page number"
// @Param        sortBy query string false "Sort field, default created_at" Enums(name, created_at, pass_id)
// @Param        orderBy query string false "Sort direction, default desc" Enums(asc, desc)
// @Success      200 {object} GetPassesListResponse
// @Failure      400 {object} ResponseError "Invalid query parameters"
// @Failure      404 {object} ResponseError "No passes match the filter"
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/list [get]
func (h *Handler) GetPassesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parsePassesFilter(r.URL.Query())
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid query parameters: "+err.Error())
		return
	}

	passes, totalPasses, err := h.s.GetPassesList(ctx, filter)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "No passes match the filter")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, GetPassesListResponse{
		TotalPasses: totalPasses,
		Passes:      passes,
	})
}

func parsePassesFilter(url url.Values) (entity.PassesFilter, error) {
	qPage := url.Get("page")
	qLimit := url.Get("limit")
	category := entity.Category(url.Get("category"))
	sortBy := entity.PassesSortBy(url.Get("sortBy"))
	orderBy := entity.OrderBy(url.Get("orderBy"))

	if sortBy == "" {
		sortBy = entity.SortByCreatedAt
	}

	if orderBy == "" {
		orderBy = entity.DESC
	}

	if category != "" && !category.IsValid() {
		return entity.PassesFilter{}, fmt.Errorf("invalid category parameter: %s", category)
	}

	page, err := strconv.Atoi(qPage)
	if err != nil || page <= 0 || page > 100 {
		page = 1
	}

	limit, err := strconv.Atoi(qLimit)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	if !sortBy.IsValid() {
		return entity.PassesFilter{}, fmt.Errorf("invalid sortBy parameter: %s", sortBy)
	}

	if !orderBy.IsValid() {
		return entity.PassesFilter{}, fmt.Errorf("invalid orderBy parameter: %s", orderBy)
	}

	filter := entity.PassesFilter{
		Category: category,
		Search:   url.Get("search"),
		Page:     uint64(page),
		Limit:    uint64(limit),
		SortBy:   sortBy,
		OrderBy:  orderBy,
	}

	return filter, nil
}

type ImportRequest struct {
	Rows []entity.ImportRow `json:"rows"`
}

// BulkImport godoc
// @Summary      Bulk import
// @Description  Imports spreadsheet rows, allocating pass numbers per category; returns a per-row report
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request body ImportRequest true "Spreadsheet rows"
// @Success      200 {object} entity.ImportReport
// @Failure      400 {object} ResponseError "Invalid request body"
// @Failure      500 {object} ResponseError "Commit failed"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/import [post]
func (h *Handler) BulkImport(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, h.s.BulkImport)
}

// HistoricalImport godoc
// @Summary      Historical import
// @Description  Imports rows that carry their own pass numbers, for cards issued before the system existed
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request body ImportRequest true "Spreadsheet rows with pass numbers"
// @Success      200 {object} entity.ImportReport
// @Failure      400 {object} ResponseError "Invalid request body"
// @Failure      500 {object} ResponseError "Commit failed"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/import/historical [post]
func (h *Handler) HistoricalImport(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, h.s.HistoricalImport)
}

func (h *Handler) runImport(
	w http.ResponseWriter, r *http.Request,
	run func(ctx context.Context, rows []entity.ImportRow) (entity.ImportReport, error),
) {
	ctx := r.Context()

	var req ImportRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	report, err := run(ctx, req.Rows)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		// The report is still populated when the commit fails; return it so
		// the client sees which rows would have been written.
		SendJSON(ctx, w, http.StatusInternalServerError, report)

		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

// Stats godoc
// @Summary      Registry statistics
// @Description  Returns pass counts per category, passes expiring soon and passes without a photo
// @Tags         passes
// @Produce      json
// @Success      200 {object} entity.PassStats
// @Failure      500 {object} ResponseError "Server error"
// @Security     ApiKeyAuth
// @Param        Authorization header string true "Authorization:{accessToken}"
// @Router       /passes/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Stats(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}
