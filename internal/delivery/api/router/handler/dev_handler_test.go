package handler

import (
	"net/http"
	"testing"
	"time"

	"farmdesk/internal/domain/service"
	mockSvc "farmdesk/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevHandler_IssueToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewDevHandler(DevHandlerParams{TokenService: tokenSvc})
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tokenSvc.EXPECT().
		GenerateToken(service.Identity{UID: "dev-uid", Email: "dev@farm.test"}).
		Return("signed.jwt.token", expiresAt, nil)

	e := newTestEcho(nil)
	e.POST("/dev/token", h.IssueToken)

	rec := doRequest(e, http.MethodPost, "/dev/token", `{"uid":"dev-uid","email":"dev@farm.test"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out IssueTokenResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.True(t, expiresAt.Equal(out.ExpiresAt))
}

func TestDevHandler_IssueToken_Errors(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewDevHandler(DevHandlerParams{TokenService: tokenSvc})
	e := newTestEcho(nil)
	e.POST("/dev/token", h.IssueToken)

	rec := doRequest(e, http.MethodPost, "/dev/token", `{"email":"dev@farm.test"}`)
	requireErrorResponse(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	tokenSvc.EXPECT().GenerateToken(service.Identity{UID: "dev-uid"}).Return("", time.Time{}, errors.New("signing failed"))

	rec = doRequest(e, http.MethodPost, "/dev/token", `{"uid":"dev-uid"}`)
	requireErrorResponse(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
}

func TestDevHandler_WithoutTokenService(t *testing.T) {
	h := NewDevHandler(DevHandlerParams{})
	assert.False(t, h.CanIssueTokens())

	e := newTestEcho(nil)
	e.POST("/dev/token", h.IssueToken)

	rec := doRequest(e, http.MethodPost, "/dev/token", `{"uid":"dev-uid"}`)

	requireErrorResponse(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestDevHandler_WhoAmI(t *testing.T) {
	h := NewDevHandler(DevHandlerParams{})
	e := newTestEcho(ownerActor)
	e.GET("/dev/whoami", h.WhoAmI)

	rec := doRequest(e, http.MethodGet, "/dev/whoami", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, "owner-uid", out["uid"])
	assert.Equal(t, testFarmID.String(), out["farm_id"])
	assert.Equal(t, true, out["is_owner"])
}
