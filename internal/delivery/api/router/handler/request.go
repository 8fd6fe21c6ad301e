// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"strconv"

	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WithDetails(msg)
			}
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(name + "=" + raw)
	}

	return uint(id), nil
}
