package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "coderr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDetails(t *testing.T) {
	t.Run("absent or null leaves details untouched", func(t *testing.T) {
		for _, raw := range []string{"", "null", "  "} {
			details, err := decodeDetails(json.RawMessage(raw))
			require.NoError(t, err)
			assert.Nil(t, details)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		details, err := decodeDetails(json.RawMessage("[]"))
		require.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)
	})

	t.Run("non list values", func(t *testing.T) {
		for _, raw := range []string{`{"offer_type":"basic"}`, `"basic"`, `3`} {
			_, err := decodeDetails(json.RawMessage(raw))
			assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferDetails, raw)
		}
	})

	t.Run("list with wrong element types", func(t *testing.T) {
		_, err := decodeDetails(json.RawMessage(`[{"revisions":"many"}]`))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOfferDetails)
	})

	t.Run("price accepts strings and numbers", func(t *testing.T) {
		details, err := decodeDetails(json.RawMessage(`[{"price":"19.90","offer_type":"basic"},{"price":20,"offer_type":"standard"}]`))
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "19.9", details[0].Price.String())
		assert.Equal(t, "20", details[1].Price.String())
		assert.Nil(t, details[0].Title)
	})
}

func TestRawScalar(t *testing.T) {
	tests := map[string]string{
		``:      "",
		`null`:  "",
		`12`:    "12",
		`"12"`:  "12",
		`" 3 "`: " 3 ",
		`true`:  "true",
		`1.5e2`: "1.5e2",
		`"abc"`: "abc",
	}

	for raw, want := range tests {
		assert.Equal(t, want, rawScalar(json.RawMessage(raw)), raw)
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()

	for _, tc := range []struct {
		raw  string
		want uint
		ok   bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tc.raw)

		id, err := pathID(c, "id")
		if tc.ok {
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidID, tc.raw)
		}
	}
}
