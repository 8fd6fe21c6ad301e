package impl

import (
	"context"
	"fmt"
	"log/slog"

	"coderr/config"
	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"go.uber.org/fx"
)

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Authorizer    policy.Authorizer
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager     repository.TransactionManager
	authorizer    policy.Authorizer
	qrCodeService service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	publicBaseURL := ""
	if params.Config != nil {
		publicBaseURL = params.Config.HTTP.PublicBaseURL
	}

	return &offerService{
		txManager:     params.TxManager,
		authorizer:    params.Authorizer,
		qrCodeService: params.QRCodeService,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create builds the offer for the calling business profile and stores it with its details.
func (srv *offerService) Create(ctx context.Context, caller entity.Caller, input entity.OfferInput) (*entity.Offer, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, policy.ActionCreate, nil); err != nil {
		return nil, err
	}

	offer, err := entity.NewOffer(caller.Profile, input)
	if err != nil {
		return nil, err
	}
	if dropped := len(input.Details) - len(offer.Details); dropped > 0 {
		srv.log(ctx).Debug("Dropped offer details with repeated titles", slog.Int("dropped", dropped))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OfferRepo().Create(ctx, offer); err != nil {
			if errors.Is(err, repository.ErrDuplicateOfferType) {
				return domainerrors.ErrDuplicateOfferType
			}

			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute offer creation transaction")
	}

	srv.log(ctx).Info("Offer created", slog.Any("offerID", offer.ID), slog.Any("ownerProfileID", offer.OwnerProfileID))

	return offer, nil
}

// Update patches the offer and merges details by offer type. The derived
// minimums are only written when they changed.
func (srv *offerService) Update(ctx context.Context, caller entity.Caller, offerID uint, input usecase.UpdateOfferInput) (*entity.Offer, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, policy.ActionUpdate, nil); err != nil {
		return nil, err
	}

	var offer *entity.Offer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		found, err := srv.loadEditable(ctx, offerRepo, caller, offerID, policy.ActionUpdate)
		if err != nil {
			return err
		}

		if err := found.ApplyPatch(input.Patch); err != nil {
			return err
		}
		if err := offerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}

		if input.Details != nil {
			touched, err := found.MergeDetailsByType(input.Details)
			if err != nil {
				return err
			}
			if err := offerRepo.SaveDetails(ctx, found.ID, touched); err != nil {
				if errors.Is(err, repository.ErrDuplicateOfferType) {
					return domainerrors.ErrDuplicateOfferType
				}

				return errors.Wrap(err, "failed to save offer details")
			}
		}

		if found.RecomputeMinimums() {
			if err := offerRepo.UpdateMinimums(ctx, found); err != nil {
				return errors.Wrap(err, "failed to update offer minimums")
			}
		}
		offer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute offer update transaction")
	}

	srv.log(ctx).Info("Offer updated", slog.Any("offerID", offer.ID))

	return offer, nil
}

// Delete removes the offer together with its details.
func (srv *offerService) Delete(ctx context.Context, caller entity.Caller, offerID uint) error {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, policy.ActionDelete, nil); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		if _, err := srv.loadEditable(ctx, offerRepo, caller, offerID, policy.ActionDelete); err != nil {
			return err
		}

		return errors.Wrap(offerRepo.Delete(ctx, offerID), "failed to delete offer")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute offer deletion transaction")
	}

	srv.log(ctx).Info("Offer deleted", slog.Any("offerID", offerID))

	return nil
}

// loadEditable loads the offer and runs both the policy and the entity ownership checks.
func (srv *offerService) loadEditable(
	ctx context.Context,
	offerRepo repository.OfferRepository,
	caller entity.Caller,
	offerID uint,
	action policy.Action,
) (*entity.Offer, error) {
	offer, err := findOffer(ctx, offerRepo, offerID)
	if err != nil {
		return nil, err
	}

	facts := &policy.Facts{OwnerProfileID: offer.OwnerProfileID}
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, action, facts); err != nil {
		return nil, err
	}
	if err := offer.EnsureEditableBy(caller); err != nil {
		return nil, err
	}

	return offer, nil
}

// List returns one page of offers in list representation.
func (srv *offerService) List(ctx context.Context, caller entity.Caller, query usecase.OfferListQuery) (*usecase.OfferPage, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	filter, page, err := parseOfferListQuery(query)
	if err != nil {
		return nil, err
	}

	var (
		offers []*entity.Offer
		total  int64
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.OfferRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		offers, total = found, count

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute offer listing transaction")
	}

	if page > 1 && int64(filter.Offset) >= total {
		return nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("invalid page: %d", page))
	}

	items := make([]usecase.OfferListItem, 0, len(offers))
	for _, offer := range offers {
		items = append(items, toOfferListItem(offer))
	}

	return &usecase.OfferPage{
		Count:       total,
		Page:        page,
		PageSize:    filter.Limit,
		HasNext:     int64(filter.Offset+len(offers)) < total,
		HasPrevious: page > 1,
		Items:       items,
	}, nil
}

func toOfferListItem(offer *entity.Offer) usecase.OfferListItem {
	links := make([]usecase.DetailLink, 0, len(offer.Details))
	for _, detail := range offer.Details {
		links = append(links, usecase.DetailLink{
			ID:  detail.ID,
			URL: fmt.Sprintf("/offerdetails/%d/", detail.ID),
		})
	}

	item := usecase.OfferListItem{Offer: offer, DetailLinks: links}
	if offer.Owner != nil {
		item.UserDetails = usecase.UserDetails{
			FirstName: offer.Owner.FirstName,
			LastName:  offer.Owner.LastName,
			Username:  offer.Owner.Username,
		}
	}

	return item
}

// Get returns one offer with its full details.
func (srv *offerService) Get(ctx context.Context, caller entity.Caller, offerID uint) (*entity.Offer, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOffer, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var offer *entity.Offer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOffer(ctx, repoFactory.OfferRepo(), offerID)
		offer = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer")
	}

	return offer, nil
}

// GetDetail returns a single offer detail.
func (srv *offerService) GetDetail(ctx context.Context, caller entity.Caller, detailID uint) (*entity.OfferDetail, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceOfferDetail, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var detail *entity.OfferDetail
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOfferDetail(ctx, repoFactory.OfferRepo(), detailID)
		detail = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer detail")
	}

	return detail, nil
}

// ShareQR renders the share code of an existing offer.
func (srv *offerService) ShareQR(ctx context.Context, caller entity.Caller, offerID uint) ([]byte, error) {
	offer, err := srv.Get(ctx, caller, offerID)
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/api/offers/%d/", srv.publicBaseURL, offer.ID)
	png, err := srv.qrCodeService.GenerateOfferQR(offer.ID, link)
	if err != nil {
		srv.log(ctx).Error("Failed to generate offer QR code", slog.Any("offerID", offer.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}

func findOffer(ctx context.Context, offerRepo repository.OfferRepository, offerID uint) (*entity.Offer, error) {
	offer, err := offerRepo.FindByID(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

func findOfferDetail(ctx context.Context, offerRepo repository.OfferRepository, detailID uint) (*entity.OfferDetail, error) {
	detail, err := offerRepo.FindDetailByID(ctx, detailID)
	if errors.Is(err, repository.ErrOfferDetailNotFound) {
		return nil, domainerrors.ErrOfferDetailNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return detail, nil
}
