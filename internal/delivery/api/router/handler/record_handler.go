package handler

import (
	"net/http"
	"strings"

	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	Records usecase.RecordUsecases
}

// RecordHandler serves CRUD routes for every log kind under /records/:kind.
type RecordHandler struct {
	records usecase.RecordUsecases
}

// NewRecordHandler is the constructor for RecordHandler
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{records: params.Records}
}

// RegisterRoutes mounts one route set per kind on g. Paths naming an
// unknown kind answer UNKNOWN_RECORD_KIND.
func (h *RecordHandler) RegisterRoutes(g *echo.Group) {
	registerKind(g, entity.RecordKindPlanting, h.records.Planting)
	registerKind(g, entity.RecordKindHarvesting, h.records.Harvesting)
	registerKind(g, entity.RecordKindSoil, h.records.Soil)
	registerKind(g, entity.RecordKindWeather, h.records.Weather)
	registerKind(g, entity.RecordKindFertilizer, h.records.Fertilizer)
	registerKind(g, entity.RecordKindIrrigation, h.records.Irrigation)
	registerKind(g, entity.RecordKindRevenue, h.records.Revenue)
	registerKind(g, entity.RecordKindExpense, h.records.Expense)
	registerKind(g, entity.RecordKindHealth, h.records.Health)
	registerKind(g, entity.RecordKindBreeding, h.records.Breeding)
	registerKind(g, entity.RecordKindTask, h.records.Task)

	g.Any("/:kind", unknownKind)
	g.Any("/:kind/:id", unknownKind)
}

func unknownKind(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrUnknownRecordKind.WithDetails("unknown record kind: "+c.Param("kind")))
}

func registerKind[E any](g *echo.Group, kind entity.RecordKind, uc usecase.RecordUsecase[E]) {
	routes := &recordRoutes[E]{uc: uc}

	kindGroup := g.Group("/" + string(kind))
	kindGroup.POST("", routes.Create)
	kindGroup.GET("", routes.List)
	kindGroup.GET("/:id", routes.Get)
	kindGroup.PUT("/:id", routes.Update)
	kindGroup.DELETE("/:id", routes.Delete)
}

// recordRoutes adapts one RecordUsecase to echo handlers.
type recordRoutes[E any] struct {
	uc usecase.RecordUsecase[E]
}

func (r *recordRoutes[E]) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	record := new(E)
	if err := c.Bind(record); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(record); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := r.uc.Create(c.Request().Context(), actor, record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

func (r *recordRoutes[E]) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	record, err := r.uc.Get(c.Request().Context(), actor, recordID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// List accepts from, to, field_id, limit and offset query parameters.
func (r *recordRoutes[E]) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	query, err := parseRecordQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	records, err := r.uc.List(c.Request().Context(), actor, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

func (r *recordRoutes[E]) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	record := new(E)
	if err := c.Bind(record); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(record); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	updated, err := r.uc.Update(c.Request().Context(), actor, recordID, record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

func (r *recordRoutes[E]) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	if err := r.uc.Delete(c.Request().Context(), actor, recordID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func parseRecordQuery(c echo.Context) (repository.RecordQuery, error) {
	var query repository.RecordQuery
	var err error

	if query.From, err = parseDate(c.QueryParam("from")); err != nil {
		return query, err
	}
	if query.To, err = parseEndDate(c.QueryParam("to")); err != nil {
		return query, err
	}
	if query.FieldID, err = parseOptionalUUID(c.QueryParam("field_id")); err != nil {
		return query, errInvalidFieldID
	}
	query.Crop = strings.TrimSpace(c.QueryParam("crop"))
	query.AnimalID = strings.TrimSpace(c.QueryParam("animal_id"))
	query.Species = strings.TrimSpace(c.QueryParam("species"))
	if query.Limit, err = queryInt(c, "limit", 0); err != nil {
		return query, err
	}
	if query.Offset, err = queryInt(c, "offset", 0); err != nil {
		return query, err
	}

	return query, nil
}
