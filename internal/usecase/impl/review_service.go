package impl

import (
	"context"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/errors"
	"coderr/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	authorizer policy.Authorizer
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	authorizer policy.Authorizer,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  txManager,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the caller's review of a business profile. A second review of
// the same business is rejected, never merged into the first.
func (srv *reviewService) Create(ctx context.Context, caller entity.Caller, input usecase.CreateReviewInput) (*entity.Review, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, policy.ActionCreate, nil); err != nil {
		return nil, err
	}
	if err := entity.ValidateRating(input.Rating); err != nil {
		return nil, err
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		business, err := findProfile(ctx, repoFactory.ProfileRepo(), input.BusinessProfileID)
		if err != nil {
			return err
		}

		written, err := entity.WriteReview(caller.Profile, business, input.Rating, input.Description)
		if err != nil {
			return err
		}

		_, err = reviewRepo.FindByReviewerAndBusiness(ctx, written.ReviewerProfileID, written.BusinessProfileID)
		if err == nil {
			return domainerrors.ErrDuplicateReview
		}
		if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check existing review")
		}

		if err := reviewRepo.Create(ctx, written); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}
		review = written

		return nil
	})
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindDuplicateReview {
			srv.log(ctx).Warn("Duplicate review rejected",
				slog.Any("reviewerProfileID", caller.ProfileID()),
				slog.Any("businessProfileID", input.BusinessProfileID),
			)
		}

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// Update changes rating or description of the caller's own review.
func (srv *reviewService) Update(ctx context.Context, caller entity.Caller, reviewID uint, patch entity.ReviewPatch) (*entity.Review, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, policy.ActionUpdate, nil); err != nil {
		return nil, err
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		found, err := srv.loadEditable(ctx, reviewRepo, caller, reviewID, policy.ActionUpdate)
		if err != nil {
			return err
		}
		if err := found.Apply(patch); err != nil {
			return err
		}
		if err := reviewRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return review, nil
}

// Delete removes the caller's own review.
func (srv *reviewService) Delete(ctx context.Context, caller entity.Caller, reviewID uint) error {
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, policy.ActionDelete, nil); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := srv.loadEditable(ctx, reviewRepo, caller, reviewID, policy.ActionDelete); err != nil {
			return err
		}

		return errors.Wrap(reviewRepo.Delete(ctx, reviewID), "failed to delete review")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

func (srv *reviewService) loadEditable(
	ctx context.Context,
	reviewRepo repository.ReviewRepository,
	caller entity.Caller,
	reviewID uint,
	action policy.Action,
) (*entity.Review, error) {
	review, err := findReview(ctx, reviewRepo, reviewID)
	if err != nil {
		return nil, err
	}

	facts := &policy.Facts{OwnerProfileID: review.ReviewerProfileID}
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, action, facts); err != nil {
		return nil, err
	}
	if err := review.EnsureEditableBy(caller); err != nil {
		return nil, err
	}

	return review, nil
}

// List returns reviews filtered by business or reviewer.
func (srv *reviewService) List(ctx context.Context, caller entity.Caller, query usecase.ReviewListQuery) ([]*entity.Review, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	businessID, err := parseOptionalID(query.BusinessUserID, "business_user_id")
	if err != nil {
		return nil, err
	}
	reviewerID, err := parseOptionalID(query.ReviewerID, "reviewer_id")
	if err != nil {
		return nil, err
	}
	sort, err := parseOrdering(query.Ordering, reviewOrderings)
	if err != nil {
		return nil, err
	}

	filter := repository.ReviewFilter{
		BusinessProfileID: businessID,
		ReviewerProfileID: reviewerID,
		Sort:              sort,
	}

	var reviews []*entity.Review
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review listing transaction")
	}

	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return reviews, nil
}

// Get returns one review.
func (srv *reviewService) Get(ctx context.Context, caller entity.Caller, reviewID uint) (*entity.Review, error) {
	if err := srv.authorizer.Authorize(caller, policy.ResourceReview, policy.ActionRead, nil); err != nil {
		return nil, err
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findReview(ctx, repoFactory.ReviewRepo(), reviewID)
		review = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

func findReview(ctx context.Context, reviewRepo repository.ReviewRepository, reviewID uint) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
