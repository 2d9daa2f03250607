package label

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListLabels(context context.Context) ([]*Label, error) {
	return service.repo.ListLabels(context)
}

func (service *Service) GetLabel(context context.Context, id int) (*Label, error) {
	label, err := service.repo.GetLabel(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Label")
		}
		return nil, err
	}
	return label, nil
}

func (service *Service) CreateLabel(context context.Context, label *Label) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, label.Name).MaxLen(FieldName, label.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateLabel(context, label); err != nil {
		return err
	}

	service.logger.Info("label_created", slog.Int("id", label.ID), slog.String("name", label.Name))
	return nil
}

func (service *Service) UpdateLabel(context context.Context, id int, label *Label) error {
	label.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldName, label.Name).MaxLen(FieldName, label.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.repo.UpdateLabel(context, label); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Label")
		}
		return err
	}

	service.logger.Info("label_updated", slog.Int("id", label.ID))
	return nil
}

// DeleteLabel removes the label only. Albums referencing it keep their
// label_id; the reference goes dangling and resolves to nothing.
func (service *Service) DeleteLabel(context context.Context, id int) error {
	if err := service.repo.DeleteLabel(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Label")
		}
		return err
	}

	service.logger.Warn("label_deleted", slog.Int("id", id))
	return nil
}

func (service *Service) ListPromoters(context context.Context) ([]*Promoter, error) {
	return service.repo.ListPromoters(context)
}

func (service *Service) GetPromoter(context context.Context, id int) (*Promoter, error) {
	promoter, err := service.repo.GetPromoter(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Promoter")
		}
		return nil, err
	}
	return promoter, nil
}

func (service *Service) CreatePromoter(context context.Context, promoter *Promoter) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, promoter.Name).MaxLen(FieldName, promoter.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreatePromoter(context, promoter); err != nil {
		return err
	}

	service.logger.Info("promoter_created", slog.Int("id", promoter.ID), slog.String("name", promoter.Name))
	return nil
}

func (service *Service) UpdatePromoter(context context.Context, id int, promoter *Promoter) error {
	promoter.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldName, promoter.Name).MaxLen(FieldName, promoter.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.repo.UpdatePromoter(context, promoter); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Promoter")
		}
		return err
	}

	service.logger.Info("promoter_updated", slog.Int("id", promoter.ID))
	return nil
}

func (service *Service) DeletePromoter(context context.Context, id int) error {
	if err := service.repo.DeletePromoter(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Promoter")
		}
		return err
	}

	service.logger.Warn("promoter_deleted", slog.Int("id", id))
	return nil
}
