package handler

import (
	"net/http"

	"coderr/internal/delivery/api/response"
	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves profile reads, owner updates and the public role listings.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest is a partial profile update. Absent fields stay unchanged.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email" validate:"omitnil,email"`
	File         *string `json:"file"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
}

// Get handles GET /profile/:id/.
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.Get(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProfile(profile))
}

// Update handles PATCH /profile/:id/.
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.Update(c.Request().Context(), deliverycontext.GetCaller(c), id, entity.ProfilePatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		File:         req.File,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProfile(profile))
}

// ListBusiness handles GET /profiles/business/.
func (h *ProfileHandler) ListBusiness(c echo.Context) error {
	return h.listByRole(c, entity.RoleBusiness)
}

// ListCustomer handles GET /profiles/customer/.
func (h *ProfileHandler) ListCustomer(c echo.Context) error {
	return h.listByRole(c, entity.RoleCustomer)
}

func (h *ProfileHandler) listByRole(c echo.Context, role entity.Role) error {
	profiles, err := h.profileUC.ListByRole(c.Request().Context(), deliverycontext.GetCaller(c), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentProfileList(role, profiles))
}
