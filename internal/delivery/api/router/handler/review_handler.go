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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves business reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// CreateReviewRequest is the body of a new review.
type CreateReviewRequest struct {
	BusinessUser uint   `json:"business_user"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
}

// UpdateReviewRequest only carries the editable fields; anything else in the body is ignored.
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// List handles GET /reviews/.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUC.List(c.Request().Context(), deliverycontext.GetCaller(c), usecase.ReviewListQuery{
		BusinessUserID: c.QueryParam("business_user_id"),
		ReviewerID:     c.QueryParam("reviewer_id"),
		Ordering:       c.QueryParam("ordering"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, presentReview(r))
	}

	return response.Success(c, http.StatusOK, out)
}

// Create handles POST /reviews/.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Create(c.Request().Context(), deliverycontext.GetCaller(c), usecase.CreateReviewInput{
		BusinessProfileID: req.BusinessUser,
		Rating:            req.Rating,
		Description:       req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentReview(review))
}

// Get handles GET /reviews/:id/.
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.Get(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentReview(review))
}

// Update handles PATCH /reviews/:id/.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Update(c.Request().Context(), deliverycontext.GetCaller(c), id, entity.ReviewPatch{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentReview(review))
}

// Delete handles DELETE /reviews/:id/.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.Delete(c.Request().Context(), deliverycontext.GetCaller(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
