// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/ent/predicate"
)

// ImageMetadataDelete is the builder for deleting a ImageMetadata entity.
type ImageMetadataDelete struct {
	config
	hooks    []Hook
	mutation *ImageMetadataMutation
}

// Where appends a list predicates to the ImageMetadataDelete builder.
func (imd *ImageMetadataDelete) Where(ps ...predicate.ImageMetadata) *ImageMetadataDelete {
	imd.mutation.Where(ps...)
	return imd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (imd *ImageMetadataDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, imd.sqlExec, imd.mutation, imd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (imd *ImageMetadataDelete) ExecX(ctx context.Context) int {
	n, err := imd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (imd *ImageMetadataDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(imagemetadata.Table, sqlgraph.NewFieldSpec(imagemetadata.FieldID, field.TypeUint))
	if ps := imd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, imd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	imd.mutation.done = true
	return affected, err
}

// ImageMetadataDeleteOne is the builder for deleting a single ImageMetadata entity.
type ImageMetadataDeleteOne struct {
	imd *ImageMetadataDelete
}

// Where appends a list predicates to the ImageMetadataDelete builder.
func (imdo *ImageMetadataDeleteOne) Where(ps ...predicate.ImageMetadata) *ImageMetadataDeleteOne {
	imdo.imd.mutation.Where(ps...)
	return imdo
}

// Exec executes the deletion query.
func (imdo *ImageMetadataDeleteOne) Exec(ctx context.Context) error {
	n, err := imdo.imd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{imagemetadata.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (imdo *ImageMetadataDeleteOne) ExecX(ctx context.Context) {
	if err := imdo.Exec(ctx); err != nil {
		panic(err)
	}
}
