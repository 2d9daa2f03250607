package album

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

func (service *Service) ListReviews(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Review, error) {
	return service.reviews.ListReviews(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter))
}

func (service *Service) GetReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) (*Review, error) {
	review, err := service.reviews.GetReview(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter), djID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Review")
		}
		return nil, err
	}
	return review, nil
}

// CreateReview records a DJ's review of an existing album. The entry date
// is always stamped here; whatever the client sent is discarded, so the
// four-week recency window cannot be backdated or forged forward.
func (service *Service) CreateReview(context context.Context, review *Review) error {
	review.GenreAbbr = strings.ToUpper(review.GenreAbbr)
	review.Letter = strings.ToLower(review.Letter)

	validator := &validate.Validator{}
	validator.
		Required(FieldContent, review.Content).
		Required(FieldDJID, review.DJID).
		Letter(FieldLetter, review.Letter)
	if err := validator.Err(); err != nil {
		return err
	}

	reviewed, err := service.GetAlbum(context, review.GenreAbbr, review.ArtistNum, review.Letter)
	if err != nil {
		return err
	}
	if err := service.requireDJ(context, review.DJID); err != nil {
		return err
	}

	review.DateEntered = time.Now()

	if err := service.reviews.CreateReview(context, review); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Review " + review.ID())
		}
		return err
	}

	service.logger.Info("review_created",
		slog.String("id", review.ID()),
		slog.String("album", reviewed.Name),
	)
	return nil
}

// UpdateReview replaces a review's content and restamps its entry date,
// restarting the recency window.
func (service *Service) UpdateReview(context context.Context, genreAbbr string, artistNum int, letter, djID string, review *Review) error {
	review.GenreAbbr = strings.ToUpper(genreAbbr)
	review.ArtistNum = artistNum
	review.Letter = strings.ToLower(letter)
	review.DJID = djID

	validator := &validate.Validator{}
	validator.Required(FieldContent, review.Content)
	if err := validator.Err(); err != nil {
		return err
	}

	review.DateEntered = time.Now()

	if err := service.reviews.UpdateReview(context, review); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Review")
		}
		return err
	}

	service.logger.Info("review_updated", slog.String("id", review.ID()))
	return nil
}

func (service *Service) DeleteReview(context context.Context, genreAbbr string, artistNum int, letter, djID string) error {
	if err := service.reviews.DeleteReview(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter), djID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Review")
		}
		return err
	}

	service.logger.Info("review_deleted", slog.String("dj_id", djID))
	return nil
}

func (service *Service) ListProblems(context context.Context, genreAbbr string, artistNum int, letter string) ([]*Problem, error) {
	return service.problems.ListProblems(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter))
}

// CreateProblem records a DJ's problem report against an existing album.
// Stamped like reviews.
func (service *Service) CreateProblem(context context.Context, problem *Problem) error {
	problem.GenreAbbr = strings.ToUpper(problem.GenreAbbr)
	problem.Letter = strings.ToLower(problem.Letter)

	validator := &validate.Validator{}
	validator.
		Required(FieldContent, problem.Content).
		Required(FieldDJID, problem.DJID).
		Letter(FieldLetter, problem.Letter)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.GetAlbum(context, problem.GenreAbbr, problem.ArtistNum, problem.Letter); err != nil {
		return err
	}
	if err := service.requireDJ(context, problem.DJID); err != nil {
		return err
	}

	problem.DateEntered = time.Now()

	if err := service.problems.CreateProblem(context, problem); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Problem " + problem.ID())
		}
		return err
	}

	service.logger.Warn("problem_reported", slog.String("id", problem.ID()))
	return nil
}

// DeleteProblem closes a problem report, typically after the stacks issue
// is fixed.
func (service *Service) DeleteProblem(context context.Context, genreAbbr string, artistNum int, letter, djID string) error {
	if err := service.problems.DeleteProblem(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter), djID); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Problem report")
		}
		return err
	}

	service.logger.Info("problem_resolved", slog.String("dj_id", djID))
	return nil
}

// requireDJ vouches for the annotating DJ. The dj_id column has no
// structural constraint behind it, so the check lives here.
func (service *Service) requireDJ(context context.Context, djID string) error {
	exists, err := service.djs.DJExists(context, djID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("DJ " + djID)
	}
	return nil
}
