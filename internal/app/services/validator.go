package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/app/repositories"
	"github.com/yigit/academies/internal/pkg/apperrors"
	"github.com/yigit/academies/internal/pkg/validation"
)

// Validator runs the write-time checks for one entity type: struct rules,
// foreign key existence and natural key uniqueness.
type Validator[T any] struct {
	schema   *models.Schema[T]
	store    Store[T]
	validate *validator.Validate
}

// NewValidator creates a Validator backed by store for the probes
func NewValidator[T any](schema *models.Schema[T], store Store[T]) *Validator[T] {
	return &Validator[T]{
		schema:   schema,
		store:    store,
		validate: validation.New(),
	}
}

// Validate checks required and format rules. An empty result means valid.
func (v *Validator[T]) Validate(rec *T) []validation.Violation {
	if err := v.validate.Struct(rec); err != nil {
		if violations := validation.Violations(err); len(violations) > 0 {
			return violations
		}
		return []validation.Violation{{Message: err.Error()}}
	}
	return nil
}

// CheckReferences verifies every non-zero foreign key points at an existing row
func (v *Validator[T]) CheckReferences(ctx context.Context, rec *T) error {
	for _, fk := range v.schema.ForeignKeys {
		id := v.schema.Int64(rec, fk.Column)
		if id == 0 {
			continue
		}
		exists, err := v.store.ReferenceExists(ctx, fk.References, id)
		if err != nil {
			return fmt.Errorf("error checking %s reference: %w", fk.Field, err)
		}
		if !exists {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("%s %d does not exist", fk.Field, id)).
				WithField(fk.Field).
				WithDetails(map[string]interface{}{fk.Field: id})
		}
	}
	return nil
}

// CheckDuplicate probes the natural key and fails when a record already holds it
func (v *Validator[T]) CheckDuplicate(ctx context.Context, rec *T) error {
	found, err := v.store.FindByNaturalKey(ctx, rec)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("error checking %s duplicates: %w", v.schema.Name, err)
	}

	return apperrors.NewDuplicateError(
		fmt.Sprintf("%s already exists with id %d", v.schema.Name, *v.schema.ID(found)),
		v.naturalKeyValues(rec),
	)
}

// Check runs the struct rules then the reference probe
func (v *Validator[T]) Check(ctx context.Context, rec *T) error {
	if violations := v.Validate(rec); len(violations) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid %s", v.schema.Name),
			map[string]interface{}{"violations": violations},
		)
	}
	return v.CheckReferences(ctx, rec)
}

func (v *Validator[T]) naturalKeyValues(rec *T) map[string]interface{} {
	values := v.schema.ValueMap(rec)
	conflict := make(map[string]interface{}, len(v.schema.NaturalKey))
	for _, name := range v.schema.NaturalKey {
		col, _ := v.schema.Column(name)
		conflict[col.Field] = values[name]
	}
	return conflict
}
