package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"addressbook-api/internal/apperrors"
	"addressbook-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AddressService is the service interface for dependency injection
type AddressService interface {
	List(ctx context.Context, skip, limit int) ([]models.Person, error)
	Get(ctx context.Context, id int64) (*models.Person, error)
	Nearby(ctx context.Context, lat, lon, distanceKm float64) ([]models.Person, error)
	Create(ctx context.Context, in models.PersonCreate) (*models.MutationResult, error)
	Update(ctx context.Context, id int64, in models.PersonUpdate) (*models.MutationResult, error)
	Delete(ctx context.Context, id int64) error
}

// AddressHandler handles the address book endpoints
type AddressHandler struct {
	service AddressService
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc AddressService) *AddressHandler {
	return &AddressHandler{service: svc}
}

// Register mounts the address book routes on r.
func (h *AddressHandler) Register(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/all_address", h.AllAddress)
	r.GET("/get_address/:id", h.GetAddress)
	r.GET("/nearby", h.Nearby)
	r.POST("/create_address", h.CreateAddress)
	r.PUT("/update_address/:id", h.UpdateAddress)
	r.DELETE("/delete_address/:id", h.DeleteAddress)
}

// Index handles GET /
func (h *AddressHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Address Book API"})
}

// AllAddress handles GET /all_address requests
//
//	@Summary	List persons with their addresses
//	@Tags		Address Book Group
//	@Produce	json
//	@Param		skip	query		int	false	"offset"	default(0)
//	@Param		limit	query		int	false	"page size"	default(10)
//	@Success	200		{array}		models.Person
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/all_address [get]
func (h *AddressHandler) AllAddress(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		writeError(c, invalidParam("skip", "skip must be an integer"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		writeError(c, invalidParam("limit", "limit must be an integer"))
		return
	}

	persons, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// GetAddress handles GET /get_address/:id requests
//
//	@Summary	Fetch one person with their address
//	@Tags		Address Book Group
//	@Produce	json
//	@Param		id	path		int	true	"person id"
//	@Success	200	{object}	models.Person
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/get_address/{id} [get]
func (h *AddressHandler) GetAddress(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	person, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// Nearby handles GET /nearby requests
//
//	@Summary	Persons whose address lies within a distance of a point
//	@Tags		Address Book Group
//	@Produce	json
//	@Param		latitude	query		number	true	"latitude"
//	@Param		longitude	query		number	true	"longitude"
//	@Param		distance	query		number	true	"radius in km, inclusive"
//	@Success	200			{array}		models.Person
//	@Failure	400			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/nearby [get]
func (h *AddressHandler) Nearby(c *gin.Context) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	distStr := c.Query("distance")

	if latStr == "" || lonStr == "" || distStr == "" {
		writeError(c, apperrors.Validation("missing required query parameters 'latitude', 'longitude' and 'distance'", nil))
		return
	}

	lat, ok := parseFinite(c, "latitude", latStr)
	if !ok {
		return
	}
	lon, ok := parseFinite(c, "longitude", lonStr)
	if !ok {
		return
	}
	dist, ok := parseFinite(c, "distance", distStr)
	if !ok {
		return
	}

	persons, err := h.service.Nearby(c.Request.Context(), lat, lon, dist)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// CreateAddress handles POST /create_address requests
//
//	@Summary	Create a person and their geocoded address
//	@Tags		Address Book Group
//	@Accept		json
//	@Produce	json
//	@Param		person	body		models.PersonCreate	true	"person and address"
//	@Success	201		{object}	models.MutationResult
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/create_address [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var in models.PersonCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body: "+err.Error(), nil))
		return
	}

	result, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateAddress handles PUT /update_address/:id requests
//
//	@Summary	Partially update a person and their address
//	@Tags		Address Book Group
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"person id"
//	@Param		person	body		models.PersonUpdate	true	"fields to change"
//	@Success	201		{object}	models.MutationResult
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/update_address/{id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	var in models.PersonUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, apperrors.Validation("invalid request body: "+err.Error(), nil))
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// DeleteAddress handles DELETE /delete_address/:id requests
//
//	@Summary	Delete a person and their address
//	@Tags		Address Book Group
//	@Produce	json
//	@Param		id	path		int	true	"person id"
//	@Success	201	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/delete_address/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, ok := personID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Address deleted successfully"})
}

func personID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, invalidParam("id", "person id must be an integer"))
		return 0, false
	}
	return id, true
}

// parseFinite parses a float query parameter. NaN and infinities are
// rejected; PostgreSQL and Go compare them differently.
func parseFinite(c *gin.Context, field, raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(c, invalidParam(field, "invalid "+field+" format"))
		return 0, false
	}
	return v, true
}

func invalidParam(field, message string) error {
	return apperrors.Validation(message, []apperrors.Violation{{Field: field, Rule: "format", Message: message}})
}

func writeError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Storage("Internal Server Error", nil, err)
	}

	status := apperrors.StatusCode(appErr.Kind)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("kind", string(appErr.Kind)).Interface("request_id", appErr.RequestID).Msg("request failed")

	resp := ErrorResponse{
		Message:    appErr.Message,
		Error:      string(appErr.Kind),
		RequestID:  appErr.RequestID,
		Violations: appErr.Violations,
	}
	if appErr.Err != nil {
		resp.Detail = appErr.Err.Error()
	}
	c.JSON(status, resp)
}
