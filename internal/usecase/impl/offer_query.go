package impl

import (
	"math"
	"strconv"
	"strings"

	"coderr/internal/domain/constants"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/shopspring/decimal"
)

var offerOrderings = map[string]repository.Sort{
	"min_price":   {Field: repository.SortByMinPrice},
	"-min_price":  {Field: repository.SortByMinPrice, Desc: true},
	"updated_at":  {Field: repository.SortByUpdatedAt},
	"-updated_at": {Field: repository.SortByUpdatedAt, Desc: true},
}

var reviewOrderings = map[string]repository.Sort{
	"updated_at":  {Field: repository.SortByUpdatedAt},
	"-updated_at": {Field: repository.SortByUpdatedAt, Desc: true},
	"rating":      {Field: repository.SortByRating},
	"-rating":     {Field: repository.SortByRating, Desc: true},
}

// parseOfferListQuery turns raw query values into a repository filter and the requested page.
func parseOfferListQuery(query usecase.OfferListQuery) (repository.OfferFilter, int, error) {
	filter := repository.OfferFilter{Search: strings.TrimSpace(query.Search)}

	if raw := strings.TrimSpace(query.MinPrice); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, domainerrors.ErrInvalidFilter.WithDetails("min_price must be a number, received: " + raw)
		}
		filter.MinPrice = &minPrice
	}

	if raw := strings.TrimSpace(query.MaxDeliveryTime); raw != "" {
		maxDelivery, err := strconv.Atoi(raw)
		if err != nil {
			return filter, 0, domainerrors.ErrInvalidFilter.WithDetails("max_delivery_time must be an integer, received: " + raw)
		}
		filter.MaxDeliveryTime = &maxDelivery
	}

	if raw := strings.TrimSpace(query.CreatorID); raw != "" {
		creatorID, err := parseID(raw)
		if err != nil {
			return filter, 0, domainerrors.ErrInvalidFilter.WithDetails("creator_id must be a positive integer, received: " + raw)
		}
		filter.CreatorID = &creatorID
	}

	sort, err := parseOrdering(query.Ordering, offerOrderings)
	if err != nil {
		return filter, 0, err
	}
	filter.Sort = sort

	page := 1
	if raw := strings.TrimSpace(query.Page); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, 0, domainerrors.ErrNotFound.WithDetails("invalid page: " + raw)
		}
	}

	filter.Limit = pageSize(query.PageSize)
	if page-1 > math.MaxInt/filter.Limit {
		return filter, 0, domainerrors.ErrNotFound.WithDetails("invalid page: " + query.Page)
	}
	filter.Offset = (page - 1) * filter.Limit

	return filter, page, nil
}

// pageSize falls back to the default for unusable values and caps at the maximum.
func pageSize(raw string) int {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || size < 1 {
		return constants.DefaultOfferPageSize
	}

	return min(size, constants.MaxOfferPageSize)
}

func parseOrdering(raw string, allowed map[string]repository.Sort) (repository.Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return repository.Sort{}, nil
	}

	sort, ok := allowed[raw]
	if !ok {
		return repository.Sort{}, domainerrors.ErrInvalidOrdering.WithDetails(raw)
	}

	return sort, nil
}

// parseID parses a positive integer identifier.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(raw)
	}

	return uint(id), nil
}

func parseOptionalID(raw, field string) (*uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := parseID(raw)
	if err != nil {
		return nil, domainerrors.ErrInvalidFilter.WithDetails(field + " must be a positive integer, received: " + raw)
	}

	return &id, nil
}
