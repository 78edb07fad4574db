package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/repositories"
	"github.com/yigit/academies/internal/pkg/apperrors"
	"github.com/yigit/academies/internal/pkg/logger"
	"github.com/yigit/academies/internal/pkg/patch"
)

// Store is the persistence contract of a resource service.
// repositories.Repository satisfies it.
type Store[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindBy(ctx context.Context, column string, value any) ([]*T, error)
	FindByNaturalKey(ctx context.Context, rec *T) (*T, error)
	ReferenceExists(ctx context.Context, table string, id int64) (bool, error)
	Create(ctx context.Context, rec *T) (int64, error)
	Update(ctx context.Context, id int64, rec *T) error
	DeleteByID(ctx context.Context, id int64) error
}

// ResourceService defines the CRUD operations shared by every entity type
type ResourceService[T any] interface {
	Schema() *models.Schema[T]
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	ListBy(ctx context.Context, column string, parentID int64) ([]*T, error)
	Create(ctx context.Context, input *T) (*T, error)
	Replace(ctx context.Context, id int64, input *T) error
	Patch(ctx context.Context, id int64, doc patch.Document) error
	Delete(ctx context.Context, id int64) error
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl[T any] struct {
	schema    *models.Schema[T]
	store     Store[T]
	validator *Validator[T]
}

// NewResourceService creates a new resource service instance
func NewResourceService[T any](schema *models.Schema[T], store Store[T]) ResourceService[T] {
	return &resourceServiceImpl[T]{
		schema:    schema,
		store:     store,
		validator: NewValidator(schema, store),
	}
}

// Schema returns the schema of the managed entity
func (s *resourceServiceImpl[T]) Schema() *models.Schema[T] {
	return s.schema
}

// List retrieves all records in id order
func (s *resourceServiceImpl[T]) List(ctx context.Context) ([]*T, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		logger.Error().Err(err).Str("entity", s.schema.Name).Msg("Failed to list records")
		return nil, fmt.Errorf("error retrieving %s: %w", s.schema.Plural, err)
	}
	logger.Info().Str("entity", s.schema.Name).Int("count", len(records)).Msg("Listed records")
	return records, nil
}

// GetByID retrieves a record by ID
func (s *resourceServiceImpl[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, s.invalidID(id)
	}

	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, s.notFound(id)
		}
		logger.Error().Err(err).Str("entity", s.schema.Name).Int64("id", id).Msg("Failed to get record")
		return nil, fmt.Errorf("error retrieving %s: %w", s.schema.Name, err)
	}
	logger.Info().Str("entity", s.schema.Name).Int64("id", id).Msg("Retrieved record")
	return rec, nil
}

// ListBy retrieves the records whose foreign key column equals parentID
func (s *resourceServiceImpl[T]) ListBy(ctx context.Context, column string, parentID int64) ([]*T, error) {
	if _, ok := s.schema.ForeignKey(column); !ok {
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("%s has no relation %q", s.schema.Name, column))
	}
	if parentID <= 0 {
		return nil, s.invalidID(parentID)
	}

	records, err := s.store.FindBy(ctx, column, parentID)
	if err != nil {
		logger.Error().Err(err).Str("entity", s.schema.Name).Str("column", column).Msg("Failed to list related records")
		return nil, fmt.Errorf("error retrieving %s: %w", s.schema.Plural, err)
	}
	return records, nil
}

// Create validates input and inserts it, returning the record with its new id
func (s *resourceServiceImpl[T]) Create(ctx context.Context, input *T) (*T, error) {
	if input == nil {
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("%s is required", s.schema.Name))
	}
	if id := *s.schema.ID(input); id != 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"id is assigned by the server and must not be set").WithField("id")
	}

	if err := s.validator.Check(ctx, input); err != nil {
		return nil, err
	}
	if err := s.validator.CheckDuplicate(ctx, input); err != nil {
		logger.Info().Str("entity", s.schema.Name).Msg("Rejected duplicate record")
		return nil, err
	}

	id, err := s.store.Create(ctx, input)
	if err != nil {
		return nil, s.translateWriteError(err, input, "creating")
	}

	logger.Info().Str("entity", s.schema.Name).Int64("id", id).Msg("Created record")
	return input, nil
}

// Replace overwrites every mutable field of an existing record
func (s *resourceServiceImpl[T]) Replace(ctx context.Context, id int64, input *T) error {
	if input == nil {
		return apperrors.NewInvalidArgumentError(fmt.Sprintf("%s is required", s.schema.Name))
	}
	if id <= 0 {
		return s.invalidID(id)
	}
	if bodyID := *s.schema.ID(input); bodyID != id {
		return apperrors.NewCustomError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("id %d in body does not match id %d in path", bodyID, id)).WithField("id")
	}

	if err := s.validator.Check(ctx, input); err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, input); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return s.notFound(id)
		}
		return s.translateWriteError(err, input, "updating")
	}

	logger.Info().Str("entity", s.schema.Name).Int64("id", id).Msg("Replaced record")
	return nil
}

// Patch applies doc to the stored record and writes the result back
func (s *resourceServiceImpl[T]) Patch(ctx context.Context, id int64, doc patch.Document) error {
	if id <= 0 {
		return s.invalidID(id)
	}
	if doc == nil {
		return apperrors.NewInvalidArgumentError("patch document is required")
	}

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// absent targets are reported as invalid input, not 404
			return apperrors.NewValidationError(
				fmt.Sprintf("%s with id %d does not exist", s.schema.Name, id),
				map[string]interface{}{"id": id},
			)
		}
		return fmt.Errorf("error retrieving %s: %w", s.schema.Name, err)
	}

	patched, err := patch.Apply(current, doc, s.schema.Fields())
	if err != nil {
		if errors.Is(err, patch.ErrInvalidOperation) {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		return fmt.Errorf("error applying patch to %s: %w", s.schema.Name, err)
	}
	*s.schema.ID(patched) = id

	if err := s.validator.Check(ctx, patched); err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, patched); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewValidationError(
				fmt.Sprintf("%s with id %d does not exist", s.schema.Name, id),
				map[string]interface{}{"id": id},
			)
		}
		return s.translateWriteError(err, patched, "patching")
	}

	logger.Info().Str("entity", s.schema.Name).Int64("id", id).Int("operations", len(doc)).Msg("Patched record")
	return nil
}

// Delete removes a record. Deleting an absent record succeeds.
func (s *resourceServiceImpl[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return s.invalidID(id)
	}

	err := s.store.DeleteByID(ctx, id)
	switch {
	case err == nil:
		logger.Info().Str("entity", s.schema.Name).Int64("id", id).Msg("Deleted record")
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		logger.Info().Str("entity", s.schema.Name).Int64("id", id).Msg("Delete of absent record ignored")
		return nil
	case errors.Is(err, repositories.ErrHasDependents):
		return apperrors.NewHasDependentsError(
			fmt.Sprintf("%s %d is still referenced (%v)", s.schema.Name, id, err))
	default:
		logger.Error().Err(err).Str("entity", s.schema.Name).Int64("id", id).Msg("Failed to delete record")
		return fmt.Errorf("error deleting %s: %w", s.schema.Name, err)
	}
}

func (s *resourceServiceImpl[T]) translateWriteError(err error, rec *T, action string) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.NewDuplicateError(
			fmt.Sprintf("%s already exists", s.schema.Name),
			s.validator.naturalKeyValues(rec),
		)
	case errors.Is(err, repositories.ErrInvalidReference):
		return apperrors.NewValidationError(
			fmt.Sprintf("%s references a record that does not exist", s.schema.Name), nil)
	}
	logger.Error().Err(err).Str("entity", s.schema.Name).Msgf("Failed %s record", action)
	return fmt.Errorf("error %s %s: %w", action, s.schema.Name, err)
}

func (s *resourceServiceImpl[T]) invalidID(id int64) error {
	return apperrors.NewCustomError(apperrors.ErrInvalidArgument,
		fmt.Sprintf("invalid %s id %d", s.schema.Name, id)).WithField("id")
}

func (s *resourceServiceImpl[T]) notFound(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s with id %d not found", s.schema.Name, id))
}
