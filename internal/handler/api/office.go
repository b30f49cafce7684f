package api

import (
	"net/http"

	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/handler/httperr"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfficeHandler struct {
	q    queries.OfficeQueries
	cmds commands.OfficeCommands
}

func NewOfficeHandler(q queries.OfficeQueries, cmds commands.OfficeCommands) *OfficeHandler {
	return &OfficeHandler{q: q, cmds: cmds}
}

// @Summary Search offices
// @Description List the office catalog narrowed by type, location text and minimum capacity
// @Tags offices
// @Produce json
// @Param type query string false "Office type, or 'all'"
// @Param location query string false "Substring of location or address (case-insensitive)"
// @Param min_capacity query int false "Minimum capacity; 1 or less disables the filter"
// @Success 200 {object} resdto.OfficeListResponse
// @Failure 500 {object} httperr.Response
// @Router /offices [get]
func (h *OfficeHandler) List(c *gin.Context) {
	var q reqdto.SearchOfficesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.Search(c.Request.Context(), q.ToCriteria())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offices", nil)
		return
	}

	res, err := resdto.FromOfficeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get office
// @Description Get an office by ID
// @Tags offices
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} resdto.OfficeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offices/{id} [get]
func (h *OfficeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithOfficeError(c, err)
		return
	}

	res, err := resdto.FromOfficeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote a booking price
// @Description Price a time range or a duration package for an office; totalPrice 0 means not yet priceable
// @Tags offices
// @Produce json
// @Param id path string true "Office ID"
// @Param start query string false "Start time HH:MM"
// @Param end query string false "End time HH:MM"
// @Param package query string false "Duration package id"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offices/{id}/quote [get]
func (h *OfficeHandler) Quote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var q reqdto.QuoteQuery
	if err = c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	duration, err := q.ToDuration()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", err.Error())
		return
	}

	view, err := h.q.Quote(c.Request.Context(), id, duration)
	if err != nil {
		abortWithOfficeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List cities
// @Description Distinct city names derived from office locations
// @Tags offices
// @Produce json
// @Success 200 {object} resdto.CitiesResponse
// @Router /cities [get]
func (h *OfficeHandler) Cities(c *gin.Context) {
	cities, err := h.q.Cities(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cities", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CitiesResponse{Cities: cities})
}

// @Summary List duration packages
// @Tags offices
// @Produce json
// @Success 200 {object} map[string][]resdto.DurationPackageResponse
// @Router /duration-packages [get]
func (h *OfficeHandler) DurationPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": resdto.FromDurationPackages(h.q.DurationPackages(c.Request.Context()))})
}

// @Summary Create office
// @Description Add an office to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfficeRequest true "Create office request"
// @Success 201 {object} resdto.OfficeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/offices [post]
func (h *OfficeHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid office", domainDetail(err))
		case errs.Is(err, commands.ErrDuplicateOffice):
			httperr.AbortWithError(c, http.StatusConflict, err, "Office already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create office failed", nil)
		}
		return
	}

	res, err := resdto.FromOfficeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.Header("Location", "/api/offices/"+view.ID.String())
	c.JSON(http.StatusCreated, res)
}

func abortWithOfficeError(c *gin.Context, err error) {
	if errs.Is(err, queries.ErrOfficeNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Office not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load office", nil)
}
