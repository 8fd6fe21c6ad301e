package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coderr/internal/delivery/api/response"
	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "app error keeps details",
			err:         errors.Wrap(domainerrors.ErrInvalidOfferType.WithDetails("gold"), "create offer"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_OFFER_TYPE",
			wantDetails: "gold",
		},
		{
			name:       "forbidden names its reason",
			err:        domainerrors.ErrNotOfferOwner,
			wantStatus: http.StatusForbidden,
			wantCode:   "NOT_OFFER_OWNER",
		},
		{
			name:       "duplicate review",
			err:        domainerrors.ErrDuplicateReview,
			wantStatus: http.StatusBadRequest,
			wantCode:   "DUPLICATE_REVIEW",
		},
		{
			name:       "fatal hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: boom"), "insert order"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/offers/", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
		})
	}
}
