package handler

import (
	"net/http"
	"strconv"
	"time"

	"farmdesk/internal/delivery/api/response"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate    = errors.New("dates must be YYYY-MM-DD or RFC 3339")
	errInvalidFieldID = errors.New("field_id must be a UUID")
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// unauthorized is returned when the auth middleware did not run.
func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Caller not found in token")
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. Empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(dateLayout, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errInvalidDate
	}
	t = t.UTC()

	return &t, nil
}

// parseEndDate is parseDate for inclusive upper bounds: a calendar date
// extends to the end of that day.
func parseEndDate(value string) (*time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		end := repository.EndOfDay(t)

		return &end, nil
	}

	return parseDate(value)
}

// parseOptionalUUID parses value, returning nil for empty input.
func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &id, nil
}

// queryInt reads a non-negative integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.Errorf("%s must be a non-negative integer", name)
	}

	return n, nil
}
