package postgres

import (
	"context"
	"strings"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/infra/persistence/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// withAggregate preloads the owner profile with its account and the details in id order.
func (repo *offerRepository) withAggregate(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Owner.Account").
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("offer_details.id ASC")
		})
}

// Create persists the offer together with its details in one statement batch.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(offerM).Error; err != nil {
		if isUniqueViolation(err, constraintOfferDetailsOfferType) {
			return repository.ErrDuplicateOfferType
		}
		if isCheckViolation(err) {
			return domainerrors.ErrInvalidOfferDetails.WrapMessage("offer detail violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i, detail := range offer.Details {
		detail.ID = offerM.Details[i].ID
		detail.OfferID = offerM.ID
	}

	return nil
}

func (repo *offerRepository) FindByID(ctx context.Context, id uint) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.withAggregate(ctx).First(&offerM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":       offer.Title,
			"image":       offer.Image,
			"description": offer.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	offer.UpdatedAt = now

	return nil
}

func (repo *offerRepository) SaveDetails(ctx context.Context, offerID uint, details []*entity.OfferDetail) error {
	db := repo.db.WithContext(ctx)

	for _, detail := range details {
		detail.OfferID = offerID
		detailM := fromOfferDetailDomain(detail)

		var err error
		if detail.ID == 0 {
			err = db.Create(detailM).Error
			detail.ID = detailM.ID
		} else {
			err = db.Model(&model.OfferDetailModel{}).
				Where("id = ? AND offer_id = ?", detail.ID, offerID).
				Updates(map[string]any{
					"title":                 detailM.Title,
					"revisions":             detailM.Revisions,
					"delivery_time_in_days": detailM.DeliveryTimeInDays,
					"price":                 detailM.Price,
					"features":              detailM.Features,
				}).Error
		}
		if err != nil {
			if isUniqueViolation(err, constraintOfferDetailsOfferType) {
				return repository.ErrDuplicateOfferType
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to save offer detail")
		}
	}

	return nil
}

func (repo *offerRepository) UpdateMinimums(ctx context.Context, offer *entity.Offer) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"min_price":         offer.MinPrice,
			"min_delivery_time": offer.MinDeliveryTime,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer minimums")
	}

	return nil
}

// Delete removes the offer; its details go with it through the foreign key cascade.
func (repo *offerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.OfferModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

func (repo *offerRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, int64, error) {
	var total int64
	if err := applyOfferFilter(repo.db.WithContext(ctx).Model(&model.OfferModel{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	query := applyOfferFilter(repo.withAggregate(ctx), filter)
	if filter.Sort.Field != "" {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Table: "offers", Name: string(filter.Sort.Field)},
			Desc:   filter.Sort.Desc,
		})
	}
	query = query.Order("offers.id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var offerModels []*model.OfferModel
	if err := query.Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

func applyOfferFilter(db *gorm.DB, filter repository.OfferFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		db = db.Where("(offers.title ILIKE ? OR offers.description ILIKE ?)", pattern, pattern)
	}
	if filter.MinPrice != nil {
		db = db.Where("offers.min_price >= ?", *filter.MinPrice)
	}
	if filter.MaxDeliveryTime != nil {
		db = db.Where("offers.min_delivery_time <= ?", *filter.MaxDeliveryTime)
	}
	if filter.CreatorID != nil {
		db = db.Where("offers.owner_profile_id = ?", *filter.CreatorID)
	}

	return db
}

func (repo *offerRepository) FindDetailByID(ctx context.Context, id uint) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).First(&detailM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by id")
	}

	return toOfferDetailDomain(&detailM), nil
}

func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.OfferModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return count, nil
}

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	offer := &entity.Offer{
		ID:              data.ID,
		OwnerProfileID:  data.OwnerProfileID,
		Title:           data.Title,
		Image:           data.Image,
		Description:     data.Description,
		MinPrice:        data.MinPrice,
		MinDeliveryTime: data.MinDeliveryTime,
		Details:         make([]*entity.OfferDetail, 0, len(data.Details)),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.Owner != nil {
		offer.Owner = toProfileDomain(data.Owner)
	}
	for i := range data.Details {
		offer.Details = append(offer.Details, toOfferDetailDomain(&data.Details[i]))
	}

	return offer
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	offerM := &model.OfferModel{
		ID:              data.ID,
		OwnerProfileID:  data.OwnerProfileID,
		Title:           data.Title,
		Image:           data.Image,
		Description:     data.Description,
		MinPrice:        data.MinPrice,
		MinDeliveryTime: data.MinDeliveryTime,
		Details:         make([]model.OfferDetailModel, 0, len(data.Details)),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	for _, detail := range data.Details {
		offerM.Details = append(offerM.Details, *fromOfferDetailDomain(detail))
	}

	return offerM
}

func toOfferDetailDomain(data *model.OfferDetailModel) *entity.OfferDetail {
	return &entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           featuresOrEmpty(data.Features),
		OfferType:          entity.OfferType(data.OfferType),
	}
}

func fromOfferDetailDomain(data *entity.OfferDetail) *model.OfferDetailModel {
	return &model.OfferDetailModel{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           pq.StringArray(featuresOrEmpty(data.Features)),
		OfferType:          string(data.OfferType),
	}
}

func featuresOrEmpty(features []string) []string {
	if features == nil {
		return []string{}
	}

	return features
}
