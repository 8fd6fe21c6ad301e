package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"coderr/internal/delivery/api/response"
	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
}

// OfferHandler serves offers, their details and share codes.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{offerUC: params.OfferUC}
}

// OfferDetailRequest is one package tier in an offer payload. Nil fields were not sent.
type OfferDetailRequest struct {
	Title              *string          `json:"title"`
	Revisions          *int             `json:"revisions"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
	OfferType          string           `json:"offer_type"`
}

// OfferRequest is the body of both offer creation and partial update.
// Details stays raw so a non-list value can be reported precisely.
type OfferRequest struct {
	Title       *string         `json:"title"`
	Image       *string         `json:"image"`
	Description *string         `json:"description"`
	Details     json.RawMessage `json:"details"`
}

// decodeDetails returns nil when details were not sent at all.
func decodeDetails(raw json.RawMessage) ([]entity.OfferDetailInput, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, domainerrors.ErrInvalidOfferDetails
	}

	var reqs []OfferDetailRequest
	if err := json.Unmarshal(trimmed, &reqs); err != nil {
		return nil, domainerrors.ErrInvalidOfferDetails.WithDetails(err.Error())
	}

	inputs := make([]entity.OfferDetailInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, entity.OfferDetailInput{
			Title:              req.Title,
			Revisions:          req.Revisions,
			DeliveryTimeInDays: req.DeliveryTimeInDays,
			Price:              req.Price,
			Features:           req.Features,
			OfferType:          req.OfferType,
		})
	}

	return inputs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// List handles GET /offers/.
func (h *OfferHandler) List(c echo.Context) error {
	page, err := h.offerUC.List(c.Request().Context(), deliverycontext.GetCaller(c), usecase.OfferListQuery{
		Search:          c.QueryParam("search"),
		MinPrice:        c.QueryParam("min_price"),
		MaxDeliveryTime: c.QueryParam("max_delivery_time"),
		CreatorID:       c.QueryParam("creator_id"),
		Ordering:        c.QueryParam("ordering"),
		Page:            c.QueryParam("page"),
		PageSize:        c.QueryParam("page_size"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]offerListItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		results = append(results, presentOfferListItem(item))
	}

	resp := offerPageResponse{Count: page.Count, Results: results}
	if page.HasNext {
		resp.Next = pageURL(c, page.Page+1)
	}
	if page.HasPrevious {
		resp.Previous = pageURL(c, page.Page-1)
	}

	return response.Success(c, http.StatusOK, resp)
}

// pageURL rewrites the current request URL to point at another page.
// The first page is addressed without a page parameter.
func pageURL(c echo.Context, page int) *string {
	u := *c.Request().URL
	u.Scheme = c.Scheme()
	u.Host = c.Request().Host

	query := u.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()

	link := u.String()

	return &link
}

// Create handles POST /offers/.
func (h *OfferHandler) Create(c echo.Context) error {
	var req OfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := decodeDetails(req.Details)
	if err != nil {
		return err
	}

	offer, err := h.offerUC.Create(c.Request().Context(), deliverycontext.GetCaller(c), entity.OfferInput{
		Title:       deref(req.Title),
		Image:       deref(req.Image),
		Description: deref(req.Description),
		Details:     details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentOffer(offer))
}

// Get handles GET /offers/:id/.
func (h *OfferHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerUC.Get(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOffer(offer))
}

// Update handles PATCH /offers/:id/.
func (h *OfferHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req OfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := decodeDetails(req.Details)
	if err != nil {
		return err
	}

	offer, err := h.offerUC.Update(c.Request().Context(), deliverycontext.GetCaller(c), id, usecase.UpdateOfferInput{
		Patch: entity.OfferPatch{
			Title:       req.Title,
			Image:       req.Image,
			Description: req.Description,
		},
		Details: details,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOffer(offer))
}

// Delete handles DELETE /offers/:id/.
func (h *OfferHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offerUC.Delete(c.Request().Context(), deliverycontext.GetCaller(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ShareQR handles GET /offers/:id/qr/ and answers with a PNG image.
func (h *OfferHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.offerUC.ShareQR(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetDetail handles GET /offerdetails/:id/.
func (h *OfferHandler) GetDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.offerUC.GetDetail(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOfferDetail(detail))
}
