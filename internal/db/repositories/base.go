package repositories

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"airdemo/bookings/internal/db"
	"airdemo/bookings/internal/logging"
	"airdemo/bookings/internal/metrics"
	"airdemo/bookings/internal/validation"
)

// base carries what every repository shares: the connection, the metrics
// registry and a logger named after the entity.
type base struct {
	conn    *db.Connection
	metrics *metrics.MetricsRegistry
	entity  string
	log     *zap.SugaredLogger
}

func newBase(conn *db.Connection, m *metrics.MetricsRegistry, entity string) base {
	return base{
		conn:    conn,
		metrics: m,
		entity:  entity,
		log:     logging.Named("repository").With("repository", entity),
	}
}

func (b *base) orm(ctx context.Context) *gorm.DB {
	return b.conn.ORM(ctx)
}

// observe records the outcome of op. Call it deferred with the named error.
func (b *base) observe(op string, start time.Time, errp *error) {
	b.metrics.ObserveRepo(b.entity, op, outcomeOf(*errp), time.Since(start))
}

// fail wraps err as a *RepoError and logs it at a level matching its kind.
func (b *base) fail(op string, err error, keyvals ...any) error {
	return b.failAs(op, classify(err), err, keyvals...)
}

func (b *base) failAs(op string, kind error, err error, keyvals ...any) error {
	fields := append([]any{"op", op, "kind", kind, "error", err}, keyvals...)
	switch kind {
	case ErrValidation:
		b.log.Warnw("rejected invalid input", fields...)
	case ErrNotFound, ErrNoChanges:
		b.log.Infow("nothing to change", fields...)
	case ErrConstraint:
		b.log.Warnw("store rejected write", fields...)
	default:
		b.log.Errorw("store operation failed", fields...)
	}
	return &RepoError{Kind: kind, Entity: b.entity, Op: op, Err: err}
}

func (b *base) validate(op string, value any, keyvals ...any) error {
	if err := validation.Struct(value); err != nil {
		return b.fail(op, err, keyvals...)
	}
	return nil
}

// missing reports a nil entity passed to a write.
func (b *base) missing(op string) error {
	return b.fail(op, validation.Fail(b.entity, "required"))
}

// create validates value and inserts it. Nothing reaches the store when
// validation fails.
func (b *base) create(ctx context.Context, op string, value any, keyvals ...any) error {
	if err := b.validate(op, value, keyvals...); err != nil {
		return err
	}
	if err := b.orm(ctx).Create(value).Error; err != nil {
		return b.fail(op, err, keyvals...)
	}
	b.log.Debugw("created", append([]any{"op", op}, keyvals...)...)
	return nil
}

// first loads one row into dest. found is false when no row matches.
func (b *base) first(ctx context.Context, op string, dest any, query string, args ...any) (bool, error) {
	err := b.orm(ctx).Where(query, args...).Take(dest).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, b.fail(op, err, "where", query)
	}
	return true, nil
}

// find loads every row matching query in the given order. An empty query
// selects the whole table.
func (b *base) find(ctx context.Context, op string, dest any, order string, query string, args ...any) error {
	tx := b.orm(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Order(order).Find(dest).Error; err != nil {
		return b.fail(op, err, "where", query)
	}
	return nil
}

// paginate fills dest with rows [offset, offset+limit) of the natural order
// and returns the unfiltered table count. The page and the count are read
// concurrently, each as its own statement.
func (b *base) paginate(ctx context.Context, op string, model any, dest any, order string, offset, limit int) (int64, error) {
	if err := validation.Pagination(offset, limit); err != nil {
		return 0, b.fail(op, err, "offset", offset, "limit", limit)
	}

	var total int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.orm(gctx).Model(model).Count(&total).Error
	})
	g.Go(func() error {
		return b.orm(gctx).Order(order).Offset(offset).Limit(limit).Find(dest).Error
	})
	if err := g.Wait(); err != nil {
		return 0, b.fail(op, err, "offset", offset, "limit", limit)
	}
	return total, nil
}

// update applies cols to the row(s) matched by query. An empty column set
// is ErrNoChanges; no matched row is ErrNotFound.
func (b *base) update(ctx context.Context, op string, model any, cols map[string]any, query string, args ...any) error {
	keyvals := []any{"key", args}
	if len(cols) == 0 {
		return b.failAs(op, ErrNoChanges, nil, keyvals...)
	}

	res := b.orm(ctx).Model(model).Where(query, args...).Updates(cols)
	if res.Error != nil {
		return b.fail(op, res.Error, keyvals...)
	}
	if res.RowsAffected == 0 {
		return b.failAs(op, ErrNotFound, notFound(args), keyvals...)
	}
	b.log.Infow("updated", "op", op, "key", args, "columns", len(cols))
	return nil
}

// remove deletes the row(s) matched by query. No matched row is ErrNotFound.
func (b *base) remove(ctx context.Context, op string, model any, query string, args ...any) error {
	res := b.orm(ctx).Where(query, args...).Delete(model)
	if res.Error != nil {
		return b.fail(op, res.Error, "key", args)
	}
	if res.RowsAffected == 0 {
		return b.failAs(op, ErrNotFound, notFound(args), "key", args)
	}
	b.log.Infow("deleted", "op", op, "key", args, "rows", res.RowsAffected)
	return nil
}

// migrate creates the tables for models when they do not exist yet.
func (b *base) migrate(ctx context.Context, models ...any) (err error) {
	defer b.observe("ensure_schema", time.Now(), &err)
	if err = b.orm(ctx).AutoMigrate(models...); err != nil {
		b.log.Errorw("schema setup failed", "error", err)
		return &RepoError{Kind: classify(err), Entity: b.entity, Op: "ensure_schema", Err: err}
	}
	b.log.Debugw("schema ready")
	return nil
}
