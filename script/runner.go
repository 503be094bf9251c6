package script

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tidwall/hashmap"
	"go.uber.org/zap"

	"github.com/cryptonstudio/avlset/types/avl"
)

// defaultReservedValueSlots specifies initial size of hashmap storing multiplicity of distinct values.
const defaultReservedValueSlots = 64

// Runner applies script operations to its own tree.
// NOTE: Not thread-safe.
type Runner interface {
	// Exec applies single operation and reports its result.
	Exec(op Op) error
	// Run applies operations one by one and stops on the first failure,
	// which is passed to Reporter.OnError and returned.
	Run(ctx context.Context, ops []Op) error
	// Stats returns current tree stats.
	Stats() Stats
}

// Option configures Runner.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	validate bool
	pooled   bool
}

// WithLogger sets the logger used to trace executed operations.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidation enables tree structure validation after every mutation.
func WithValidation(validate bool) Option {
	return func(o *options) {
		o.validate = validate
	}
}

// WithPool makes the tree reuse released nodes through sync.Pool.
func WithPool(pooled bool) Option {
	return func(o *options) {
		o.pooled = pooled
	}
}

// NewRunner creates Runner for the tree of given key type.
func NewRunner(keyType KeyType, reporter Reporter, opts ...Option) (Runner, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	switch keyType {
	case KeyInt:
		return newRunner(intCodec, reporter, o), nil
	case KeyUint:
		return newRunner(uintCodec, reporter, o), nil
	case KeyFloat:
		return newRunner(floatCodec, reporter, o), nil
	case KeyString:
		return newRunner(stringCodec, reporter, o), nil
	case KeyUint128:
		return newRunner(uint128Codec, reporter, o), nil
	}
	return nil, errors.Wrapf(ErrUnknownKeyType, "%q", keyType)
}

type runner[T any] struct {
	codec    codec[T]
	tree     avl.Tree[T]
	counts   *hashmap.Map[string, int] // multiplicity of every distinct value
	reporter Reporter
	logger   *zap.Logger
	validate bool
}

func newRunner[T any](c codec[T], reporter Reporter, o options) *runner[T] {
	r := &runner[T]{
		codec:    c,
		counts:   hashmap.New[string, int](defaultReservedValueSlots),
		reporter: reporter,
		logger:   o.logger,
		validate: o.validate,
	}
	if o.pooled {
		r.tree = avl.NewTreePooled(c.compare, &sync.Pool{New: func() any {
			return new(avl.Node[T])
		}})
	} else {
		r.tree = avl.NewTree(c.compare)
	}
	return r
}

func (r *runner[T]) Run(ctx context.Context, ops []Op) error {
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Exec(op); err != nil {
			r.reporter.OnError(op, err)
			return err
		}
	}
	return nil
}

func (r *runner[T]) Exec(op Op) error {
	r.logger.Debug("exec",
		zap.String("op", string(op.Kind)),
		zap.Int("line", op.Line),
		zap.Strings("values", op.Values),
	)
	if !op.Kind.Valid() {
		return errors.Wrapf(ErrUnknownOp, "line %d: %q", op.Line, op.Kind)
	}
	if op.Kind.TakesValues() {
		if len(op.Values) == 0 {
			return errors.Wrapf(ErrMissingValue, "line %d: %s", op.Line, op.Kind)
		}
	} else if len(op.Values) > 0 {
		return errors.Wrapf(ErrUnexpectedValue, "line %d: %s", op.Line, op.Kind)
	}

	switch op.Kind {
	case OpAdd, OpRemove, OpContains:
		// Parse everything first so failed operation leaves the tree untouched
		values, err := r.parse(op)
		if err != nil {
			return err
		}
		for _, v := range values {
			r.apply(op.Kind, v)
		}
		if op.Kind != OpContains {
			return r.check(op)
		}
	case OpCount:
		r.reporter.OnCount(r.tree.Count())
	case OpList:
		values := make([]string, 0, r.tree.Count())
		for v := range r.tree.All() {
			values = append(values, r.codec.format(v))
		}
		r.reporter.OnList(values)
	case OpPrint:
		var sb strings.Builder
		if err := r.tree.Fprint(&sb); err != nil {
			return errors.Wrapf(err, "line %d: print", op.Line)
		}
		r.reporter.OnPrint(sb.String())
	case OpCheck:
		if err := r.tree.Validate(); err != nil {
			return errors.Wrapf(err, "line %d: check", op.Line)
		}
		r.reporter.OnCheck(r.tree.Count(), r.tree.Height())
	case OpStats:
		r.reporter.OnStats(r.Stats())
	case OpClear:
		r.tree.Clear()
		r.counts = hashmap.New[string, int](defaultReservedValueSlots)
		r.reporter.OnClear()
		return r.check(op)
	}
	return nil
}

func (r *runner[T]) Stats() Stats {
	stats := Stats{
		Count:    r.tree.Count(),
		Distinct: r.counts.Len(),
		Height:   r.tree.Height(),
	}
	if node := r.tree.MostLeft(); node != nil {
		stats.Min = r.codec.format(node.Value())
	}
	if node := r.tree.MostRight(); node != nil {
		stats.Max = r.codec.format(node.Value())
	}
	return stats
}

func (r *runner[T]) parse(op Op) ([]T, error) {
	values := make([]T, 0, len(op.Values))
	for _, s := range op.Values {
		v, err := r.codec.parse(s)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidValue, "line %d: %q: %v", op.Line, s, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *runner[T]) apply(kind OpKind, v T) {
	key := r.codec.format(v)
	switch kind {
	case OpAdd:
		r.tree.Add(v)
		n, _ := r.counts.Get(key)
		r.counts.Set(key, n+1)
		r.reporter.OnAdd(key, r.tree.Count())
	case OpRemove:
		removed := r.tree.Remove(v)
		if removed {
			if n, _ := r.counts.Get(key); n > 1 {
				r.counts.Set(key, n-1)
			} else {
				r.counts.Delete(key)
			}
		}
		r.reporter.OnRemove(key, removed, r.tree.Count())
	case OpContains:
		r.reporter.OnContains(key, r.tree.Contains(v))
	}
	if kind != OpContains && r.logger.Core().Enabled(zap.DebugLevel) {
		r.logger.Debug("tree updated",
			zap.String("value", key),
			zap.Int("count", r.tree.Count()),
			zap.Int("height", r.tree.Height()),
		)
	}
}

// check validates the tree after mutation when validation is enabled.
func (r *runner[T]) check(op Op) error {
	if !r.validate {
		return nil
	}
	if err := r.tree.Validate(); err != nil {
		r.logger.Error("tree is corrupted", zap.Int("line", op.Line), zap.Error(err))
		return errors.Wrapf(err, "line %d: %s", op.Line, op.Kind)
	}
	return nil
}
