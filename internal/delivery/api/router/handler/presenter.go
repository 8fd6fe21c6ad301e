package handler

import (
	"time"

	"coderr/internal/domain/entity"
	"coderr/internal/usecase"

	"github.com/shopspring/decimal"
)

// money renders prices with two fraction digits, e.g. "150.00".
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type profileResponse struct {
	User         uint      `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

func presentProfile(p *entity.Profile) profileResponse {
	return profileResponse{
		User:         p.ID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         p.Role.String(),
		Email:        p.Email,
		CreatedAt:    p.CreatedAt,
	}
}

type businessProfileItem struct {
	User         uint   `json:"user"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Type         string `json:"type"`
}

type customerProfileItem struct {
	User       uint      `json:"user"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	File       string    `json:"file"`
	UploadedAt time.Time `json:"uploaded_at"`
	Type       string    `json:"type"`
}

// presentProfileList keeps the two public list shapes apart: businesses expose
// their contact data, customers only their name and picture.
func presentProfileList(role entity.Role, profiles []*entity.Profile) any {
	if role == entity.RoleBusiness {
		items := make([]businessProfileItem, 0, len(profiles))
		for _, p := range profiles {
			items = append(items, businessProfileItem{
				User:         p.ID,
				Username:     p.Username,
				FirstName:    p.FirstName,
				LastName:     p.LastName,
				File:         p.File,
				Location:     p.Location,
				Tel:          p.Tel,
				Description:  p.Description,
				WorkingHours: p.WorkingHours,
				Type:         p.Role.String(),
			})
		}

		return items
	}

	items := make([]customerProfileItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, customerProfileItem{
			User:       p.ID,
			Username:   p.Username,
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			File:       p.File,
			UploadedAt: p.CreatedAt,
			Type:       p.Role.String(),
		})
	}

	return items
}

type offerDetailResponse struct {
	ID                 uint     `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              string   `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

func presentOfferDetail(d *entity.OfferDetail) offerDetailResponse {
	features := d.Features
	if features == nil {
		features = []string{}
	}

	return offerDetailResponse{
		ID:                 d.ID,
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              money(d.Price),
		Features:           features,
		OfferType:          string(d.OfferType),
	}
}

type offerResponse struct {
	ID              uint                  `json:"id"`
	User            uint                  `json:"user"`
	Title           string                `json:"title"`
	Image           string                `json:"image"`
	Description     string                `json:"description"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Details         []offerDetailResponse `json:"details"`
	MinPrice        string                `json:"min_price"`
	MinDeliveryTime int                   `json:"min_delivery_time"`
}

// presentOffer is the single-offer shape: full detail bodies, no owner preview.
func presentOffer(o *entity.Offer) offerResponse {
	details := make([]offerDetailResponse, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, presentOfferDetail(d))
	}

	return offerResponse{
		ID:              o.ID,
		User:            o.OwnerProfileID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Details:         details,
		MinPrice:        money(o.MinPrice),
		MinDeliveryTime: o.MinDeliveryTime,
	}
}

type detailLinkResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type userDetailsResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type offerListItemResponse struct {
	ID              uint                 `json:"id"`
	User            uint                 `json:"user"`
	Title           string               `json:"title"`
	Image           string               `json:"image"`
	Description     string               `json:"description"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	Details         []detailLinkResponse `json:"details"`
	MinPrice        string               `json:"min_price"`
	MinDeliveryTime int                  `json:"min_delivery_time"`
	UserDetails     userDetailsResponse  `json:"user_details"`
}

func presentOfferListItem(item usecase.OfferListItem) offerListItemResponse {
	links := make([]detailLinkResponse, 0, len(item.DetailLinks))
	for _, link := range item.DetailLinks {
		links = append(links, detailLinkResponse{ID: link.ID, URL: link.URL})
	}

	o := item.Offer

	return offerListItemResponse{
		ID:              o.ID,
		User:            o.OwnerProfileID,
		Title:           o.Title,
		Image:           o.Image,
		Description:     o.Description,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Details:         links,
		MinPrice:        money(o.MinPrice),
		MinDeliveryTime: o.MinDeliveryTime,
		UserDetails: userDetailsResponse{
			FirstName: item.UserDetails.FirstName,
			LastName:  item.UserDetails.LastName,
			Username:  item.UserDetails.Username,
		},
	}
}

type offerPageResponse struct {
	Count    int64                   `json:"count"`
	Next     *string                 `json:"next"`
	Previous *string                 `json:"previous"`
	Results  []offerListItemResponse `json:"results"`
}

type orderResponse struct {
	ID                 uint      `json:"id"`
	CustomerUser       uint      `json:"customer_user"`
	BusinessUser       uint      `json:"business_user"`
	OfferDetailID      *uint     `json:"offer_detail_id"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              string    `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func presentOrder(o *entity.Order) orderResponse {
	features := o.Snapshot.Features
	if features == nil {
		features = []string{}
	}

	return orderResponse{
		ID:                 o.ID,
		CustomerUser:       o.CustomerProfileID,
		BusinessUser:       o.BusinessProfileID,
		OfferDetailID:      o.OfferDetailID,
		Title:              o.Snapshot.Title,
		Revisions:          o.Snapshot.Revisions,
		DeliveryTimeInDays: o.Snapshot.DeliveryTimeInDays,
		Price:              money(o.Snapshot.Price),
		Features:           features,
		OfferType:          string(o.Snapshot.OfferType),
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func presentOrders(orders []*entity.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}

	return out
}

type reviewResponse struct {
	ID           uint      `json:"id"`
	BusinessUser uint      `json:"business_user"`
	Reviewer     uint      `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func presentReview(r *entity.Review) reviewResponse {
	return reviewResponse{
		ID:           r.ID,
		BusinessUser: r.BusinessProfileID,
		Reviewer:     r.ReviewerProfileID,
		Rating:       r.Rating,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type baseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}
