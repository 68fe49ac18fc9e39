// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/picmeta-app/ent/imagemetadata"
	"github.com/anzhiyu-c/picmeta-app/ent/predicate"
)

// ImageMetadataQuery is the builder for querying ImageMetadata entities.
type ImageMetadataQuery struct {
	config
	ctx        *QueryContext
	order      []imagemetadata.OrderOption
	inters     []Interceptor
	predicates []predicate.ImageMetadata
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ImageMetadataQuery builder.
func (imq *ImageMetadataQuery) Where(ps ...predicate.ImageMetadata) *ImageMetadataQuery {
	imq.predicates = append(imq.predicates, ps...)
	return imq
}

// Limit the number of records to be returned by this query.
func (imq *ImageMetadataQuery) Limit(limit int) *ImageMetadataQuery {
	imq.ctx.Limit = &limit
	return imq
}

// Offset to start from.
func (imq *ImageMetadataQuery) Offset(offset int) *ImageMetadataQuery {
	imq.ctx.Offset = &offset
	return imq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (imq *ImageMetadataQuery) Unique(unique bool) *ImageMetadataQuery {
	imq.ctx.Unique = &unique
	return imq
}

// Order specifies how the records should be ordered.
func (imq *ImageMetadataQuery) Order(o ...imagemetadata.OrderOption) *ImageMetadataQuery {
	imq.order = append(imq.order, o...)
	return imq
}

// First returns the first ImageMetadata entity from the query.
// Returns a *NotFoundError when no ImageMetadata was found.
func (imq *ImageMetadataQuery) First(ctx context.Context) (*ImageMetadata, error) {
	nodes, err := imq.Limit(1).All(setContextOp(ctx, imq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{imagemetadata.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (imq *ImageMetadataQuery) FirstX(ctx context.Context) *ImageMetadata {
	node, err := imq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ImageMetadata ID from the query.
// Returns a *NotFoundError when no ImageMetadata ID was found.
func (imq *ImageMetadataQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = imq.Limit(1).IDs(setContextOp(ctx, imq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{imagemetadata.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (imq *ImageMetadataQuery) FirstIDX(ctx context.Context) uint {
	id, err := imq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ImageMetadata entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ImageMetadata entity is found.
// Returns a *NotFoundError when no ImageMetadata entities are found.
func (imq *ImageMetadataQuery) Only(ctx context.Context) (*ImageMetadata, error) {
	nodes, err := imq.Limit(2).All(setContextOp(ctx, imq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{imagemetadata.Label}
	default:
		return nil, &NotSingularError{imagemetadata.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (imq *ImageMetadataQuery) OnlyX(ctx context.Context) *ImageMetadata {
	node, err := imq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ImageMetadata ID in the query.
// Returns a *NotSingularError when more than one ImageMetadata ID is found.
// Returns a *NotFoundError when no entities are found.
func (imq *ImageMetadataQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = imq.Limit(2).IDs(setContextOp(ctx, imq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{imagemetadata.Label}
	default:
		err = &NotSingularError{imagemetadata.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (imq *ImageMetadataQuery) OnlyIDX(ctx context.Context) uint {
	id, err := imq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ImageMetadataSlice.
func (imq *ImageMetadataQuery) All(ctx context.Context) ([]*ImageMetadata, error) {
	ctx = setContextOp(ctx, imq.ctx, ent.OpQueryAll)
	if err := imq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ImageMetadata, *ImageMetadataQuery]()
	return withInterceptors[[]*ImageMetadata](ctx, imq, qr, imq.inters)
}

// AllX is like All, but panics if an error occurs.
func (imq *ImageMetadataQuery) AllX(ctx context.Context) []*ImageMetadata {
	nodes, err := imq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ImageMetadata IDs.
func (imq *ImageMetadataQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if imq.ctx.Unique == nil && imq.path != nil {
		imq.Unique(true)
	}
	ctx = setContextOp(ctx, imq.ctx, ent.OpQueryIDs)
	if err = imq.Select(imagemetadata.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (imq *ImageMetadataQuery) IDsX(ctx context.Context) []uint {
	ids, err := imq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (imq *ImageMetadataQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, imq.ctx, ent.OpQueryCount)
	if err := imq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, imq, querierCount[*ImageMetadataQuery](), imq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (imq *ImageMetadataQuery) CountX(ctx context.Context) int {
	count, err := imq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (imq *ImageMetadataQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, imq.ctx, ent.OpQueryExist)
	switch _, err := imq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (imq *ImageMetadataQuery) ExistX(ctx context.Context) bool {
	exist, err := imq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ImageMetadataQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (imq *ImageMetadataQuery) Clone() *ImageMetadataQuery {
	if imq == nil {
		return nil
	}
	return &ImageMetadataQuery{
		config:     imq.config,
		ctx:        imq.ctx.Clone(),
		order:      append([]imagemetadata.OrderOption{}, imq.order...),
		inters:     append([]Interceptor{}, imq.inters...),
		predicates: append([]predicate.ImageMetadata{}, imq.predicates...),
		// clone intermediate query.
		sql:  imq.sql.Clone(),
		path: imq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ImageMetadata.Query().
//		GroupBy(imagemetadata.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (imq *ImageMetadataQuery) GroupBy(field string, fields ...string) *ImageMetadataGroupBy {
	imq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ImageMetadataGroupBy{build: imq}
	grbuild.flds = &imq.ctx.Fields
	grbuild.label = imagemetadata.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ImageMetadata.Query().
//		Select(imagemetadata.FieldCreatedAt).
//		Scan(ctx, &v)
func (imq *ImageMetadataQuery) Select(fields ...string) *ImageMetadataSelect {
	imq.ctx.Fields = append(imq.ctx.Fields, fields...)
	sbuild := &ImageMetadataSelect{ImageMetadataQuery: imq}
	sbuild.label = imagemetadata.Label
	sbuild.flds, sbuild.scan = &imq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ImageMetadataSelect configured with the given aggregations.
func (imq *ImageMetadataQuery) Aggregate(fns ...AggregateFunc) *ImageMetadataSelect {
	return imq.Select().Aggregate(fns...)
}

func (imq *ImageMetadataQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range imq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, imq); err != nil {
				return err
			}
		}
	}
	for _, f := range imq.ctx.Fields {
		if !imagemetadata.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if imq.path != nil {
		prev, err := imq.path(ctx)
		if err != nil {
			return err
		}
		imq.sql = prev
	}
	return nil
}

func (imq *ImageMetadataQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ImageMetadata, error) {
	var (
		nodes = []*ImageMetadata{}
		_spec = imq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ImageMetadata).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ImageMetadata{config: imq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, imq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (imq *ImageMetadataQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := imq.querySpec()
	_spec.Node.Columns = imq.ctx.Fields
	if len(imq.ctx.Fields) > 0 {
		_spec.Unique = imq.ctx.Unique != nil && *imq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, imq.driver, _spec)
}

func (imq *ImageMetadataQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(imagemetadata.Table, imagemetadata.Columns, sqlgraph.NewFieldSpec(imagemetadata.FieldID, field.TypeUint))
	_spec.From = imq.sql
	if unique := imq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if imq.path != nil {
		_spec.Unique = true
	}
	if fields := imq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, imagemetadata.FieldID)
		for i := range fields {
			if fields[i] != imagemetadata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := imq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := imq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := imq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := imq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (imq *ImageMetadataQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(imq.driver.Dialect())
	t1 := builder.Table(imagemetadata.Table)
	columns := imq.ctx.Fields
	if len(columns) == 0 {
		columns = imagemetadata.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if imq.sql != nil {
		selector = imq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if imq.ctx.Unique != nil && *imq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range imq.predicates {
		p(selector)
	}
	for _, p := range imq.order {
		p(selector)
	}
	if offset := imq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := imq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ImageMetadataGroupBy is the group-by builder for ImageMetadata entities.
type ImageMetadataGroupBy struct {
	selector
	build *ImageMetadataQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (imgb *ImageMetadataGroupBy) Aggregate(fns ...AggregateFunc) *ImageMetadataGroupBy {
	imgb.fns = append(imgb.fns, fns...)
	return imgb
}

// Scan applies the selector query and scans the result into the given value.
func (imgb *ImageMetadataGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, imgb.build.ctx, ent.OpQueryGroupBy)
	if err := imgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImageMetadataQuery, *ImageMetadataGroupBy](ctx, imgb.build, imgb, imgb.build.inters, v)
}

func (imgb *ImageMetadataGroupBy) sqlScan(ctx context.Context, root *ImageMetadataQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(imgb.fns))
	for _, fn := range imgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*imgb.flds)+len(imgb.fns))
		for _, f := range *imgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*imgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := imgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ImageMetadataSelect is the builder for selecting fields of ImageMetadata entities.
type ImageMetadataSelect struct {
	*ImageMetadataQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ims *ImageMetadataSelect) Aggregate(fns ...AggregateFunc) *ImageMetadataSelect {
	ims.fns = append(ims.fns, fns...)
	return ims
}

// Scan applies the selector query and scans the result into the given value.
func (ims *ImageMetadataSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ims.ctx, ent.OpQuerySelect)
	if err := ims.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ImageMetadataQuery, *ImageMetadataSelect](ctx, ims.ImageMetadataQuery, ims, ims.inters, v)
}

func (ims *ImageMetadataSelect) sqlScan(ctx context.Context, root *ImageMetadataQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ims.fns))
	for _, fn := range ims.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ims.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ims.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
