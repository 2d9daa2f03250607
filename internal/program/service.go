package program

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

type Service struct {
	repo   Repository
	djs    DJDirectory
	logger *slog.Logger
}

func NewService(repo Repository, djs DJDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, djs: djs, logger: logger}
}

func (service *Service) ListFormats(context context.Context) ([]*Format, error) {
	return service.repo.ListFormats(context)
}

func (service *Service) GetFormat(context context.Context, formatType string) (*Format, error) {
	format, err := service.repo.GetFormat(context, formatType)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Program format")
		}
		return nil, err
	}
	return format, nil
}

func (service *Service) CreateFormat(context context.Context, format *Format) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldType, format.Type).
		MaxLen(FieldType, format.Type, 64).
		MaxLen(FieldDescription, format.Description, 500)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateFormat(context, format); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Program format " + format.Type)
		}
		return err
	}

	service.logger.Info("program_format_created", slog.String("type", format.Type))
	return nil
}

func (service *Service) UpdateFormat(context context.Context, formatType string, format *Format) error {
	format.Type = formatType

	if err := service.repo.UpdateFormat(context, format); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Program format")
		}
		return err
	}

	service.logger.Info("program_format_updated", slog.String("type", format.Type))
	return nil
}

func (service *Service) DeleteFormat(context context.Context, formatType string) error {
	if err := service.repo.DeleteFormat(context, formatType); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Program format")
		}
		return err
	}

	service.logger.Warn("program_format_deleted", slog.String("type", formatType))
	return nil
}

func (service *Service) ListPrograms(context context.Context, formatType string) ([]*Program, error) {
	return service.repo.ListPrograms(context, formatType)
}

// CreateProgram files a show under an existing format; the format is a
// mandatory ancestor checked here, not by the schema.
func (service *Service) CreateProgram(context context.Context, p *Program) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.GetFormat(context, p.FormatType); err != nil {
		return err
	}

	if err := service.repo.CreateProgram(context, p); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Program " + p.Name)
		}
		return err
	}

	service.logger.Info("program_created",
		slog.String("format", p.FormatType),
		slog.String("name", p.Name),
	)
	return nil
}

func (service *Service) DeleteProgram(context context.Context, formatType, name string) error {
	if err := service.repo.DeleteProgram(context, formatType, name); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Program")
		}
		return err
	}

	service.logger.Warn("program_deleted", slog.String("name", name))
	return nil
}

func (service *Service) ListSlots(context context.Context) ([]*Slot, error) {
	return service.repo.ListSlots(context)
}

func (service *Service) CreateSlot(context context.Context, s *Slot) error {
	validator := &validate.Validator{}
	validator.
		Range(FieldDay, s.Day, 0, 6).
		Required(FieldStart, s.Start)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateSlot(context, s); err != nil {
		return err
	}

	service.logger.Info("program_slot_created", slog.Int("id", s.ID), slog.Int("day", s.Day))
	return nil
}

func (service *Service) DeleteSlot(context context.Context, id int) error {
	if err := service.repo.DeleteSlot(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Program slot")
		}
		return err
	}
	return nil
}

// ListLogEntries returns a format's log back to the given time; a zero
// since returns the full log.
func (service *Service) ListLogEntries(context context.Context, formatType string, since time.Time) ([]*LogEntry, error) {
	return service.repo.ListLogEntries(context, formatType, since)
}

// CreateLogEntry records who held a slot. The timestamp is stamped here;
// the DJ reference is checked against the directory like album
// annotations are.
func (service *Service) CreateLogEntry(context context.Context, entry *LogEntry) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, entry.ProgramName).
		Required(FieldDJID, entry.DJID)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.GetFormat(context, entry.FormatType); err != nil {
		return err
	}

	exists, err := service.djs.DJExists(context, entry.DJID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("DJ " + entry.DJID)
	}

	entry.Timestamp = time.Now()

	if err := service.repo.CreateLogEntry(context, entry); err != nil {
		// Same (format, slot, timestamp) key twice.
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Program log entry")
		}
		return err
	}

	service.logger.Info("program_logged",
		slog.String("format", entry.FormatType),
		slog.Int("slot_id", entry.SlotID),
		slog.String("dj_id", entry.DJID),
	)
	return nil
}

func (service *Service) ListQuarters(context context.Context) ([]*Quarter, error) {
	return service.repo.ListQuarters(context)
}

func (service *Service) CreateQuarter(context context.Context, q *Quarter) error {
	if !q.End.After(q.Begin) {
		return validate.RequiredError("end", "Must be after begin")
	}

	if err := service.repo.CreateQuarter(context, q); err != nil {
		return err
	}

	service.logger.Info("quarter_created", slog.Int("id", q.ID))
	return nil
}

func (service *Service) DeleteQuarter(context context.Context, id int) error {
	if err := service.repo.DeleteQuarter(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Quarter")
		}
		return err
	}
	return nil
}
