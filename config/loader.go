package config

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/kbukum/confkit/envvar"
	"github.com/kbukum/confkit/errors"
	"github.com/kbukum/confkit/logger"
	"github.com/kbukum/confkit/observability"
	"github.com/kbukum/confkit/record"
	"github.com/kbukum/confkit/util"
	"github.com/kbukum/confkit/validation"
)

const (
	modeSync  = "sync"
	modeAsync = "async"
)

// Result is the outcome of SafeLoad and SafeLoadAsync.
type Result[T any] struct {
	Success bool
	Data    T
	Error   error
}

// Issues returns the validation issues of a failed result, or nil when the
// failure came from somewhere else.
func (r Result[T]) Issues() []validation.Issue {
	var verr *validation.Error
	if stderrors.As(r.Error, &verr) {
		return verr.Issues
	}
	return nil
}

// Load reads files one after another in registration order, merges all
// sources and validates the result. The first failing file aborts the load.
func (b *Builder[T]) Load(ctx context.Context) (T, error) {
	return b.finalize(ctx, modeSync)
}

// LoadAsync is Load with files read concurrently. Results are merged in
// registration order regardless of which read finishes first.
func (b *Builder[T]) LoadAsync(ctx context.Context) (T, error) {
	return b.finalize(ctx, modeAsync)
}

// SafeLoad is Load returning a Result instead of an error.
func (b *Builder[T]) SafeLoad(ctx context.Context) Result[T] {
	return toResult(b.Load(ctx))
}

// SafeLoadAsync is LoadAsync returning a Result instead of an error.
func (b *Builder[T]) SafeLoadAsync(ctx context.Context) Result[T] {
	return toResult(b.LoadAsync(ctx))
}

// Input returns the merged record without validating it.
func (b *Builder[T]) Input(ctx context.Context) (record.Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.input(ctx, b.log, modeSync)
}

func toResult[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{Error: err}
	}
	return Result[T]{Success: true, Data: data}
}

func (b *Builder[T]) finalize(ctx context.Context, mode string) (T, error) {
	var zero T
	start := time.Now()
	loadID := uuid.NewString()

	ctx, span := observability.StartSpan(ctx, observability.SpanLoad, trace.WithAttributes(
		attribute.String(observability.AttrMode, mode),
		attribute.String(observability.AttrLoadID, loadID),
		attribute.Int(observability.AttrValueCount, len(b.values)),
		attribute.Int(observability.AttrFileCount, len(b.files)),
		attribute.Bool(observability.AttrEnvEnabled, b.env),
	))
	defer span.End()

	log := b.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldLoadID, loadID,
		logger.FieldMode, mode,
	))

	fail := func(err error) (T, error) {
		observability.SetSpanError(span, err)
		b.opts.metrics.RecordLoad(ctx, mode, outcome(err), time.Since(start))
		log.WithError(err).Debug("configuration load failed", logger.DurationFields("load", time.Since(start)))
		return zero, err
	}

	if b.err != nil {
		return fail(b.err)
	}

	in, err := b.input(ctx, log, mode)
	if err != nil {
		return fail(err)
	}

	out, err := b.schema.Validate(ctx, in)
	if err != nil {
		return fail(validationError(err))
	}

	elapsed := time.Since(start)
	b.opts.metrics.RecordLoad(ctx, mode, observability.OutcomeSuccess, elapsed)
	log.Info("configuration loaded", logger.DurationFields("load", elapsed), logger.Fields(
		"values", len(b.values),
		"files", len(b.files),
		"env", b.env,
	))
	return out, nil
}

// input merges values, files and environment in that order.
func (b *Builder[T]) input(ctx context.Context, log *logger.Logger, mode string) (record.Record, error) {
	var (
		files []record.Record
		err   error
	)
	if mode == modeAsync {
		files, err = b.readFilesAsync(ctx, log)
	} else {
		files, err = b.readFiles(ctx, log)
	}
	if err != nil {
		return nil, err
	}

	var env record.Record
	if b.env {
		if env, err = b.resolveEnv(ctx, log); err != nil {
			return nil, err
		}
	}

	return record.Merge(record.Merge(b.values...), record.Merge(files...), env), nil
}

func (b *Builder[T]) readFiles(ctx context.Context, log *logger.Logger) ([]record.Record, error) {
	out := make([]record.Record, 0, len(b.files))
	for _, f := range b.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := b.readFile(ctx, log, f)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (b *Builder[T]) readFilesAsync(ctx context.Context, log *logger.Logger) ([]record.Record, error) {
	out := make([]record.Record, len(b.files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range b.files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := b.readFile(gctx, log, f)
			if err != nil {
				return err
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Builder[T]) readFile(ctx context.Context, log *logger.Logger, f fileSource) (record.Record, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanReadFile, trace.WithAttributes(
		attribute.String(observability.AttrPath, f.path),
	))
	defer span.End()

	rec, err := b.decodeFile(f)
	b.opts.metrics.RecordFileRead(ctx, err)
	if err != nil {
		observability.SetSpanError(span, err)
		log.Debug("config source failed", logger.ErrorFields("read", err), logger.Fields(logger.FieldPath, f.path))
		return nil, err
	}
	log.Debug("config source read", logger.Fields(
		logger.FieldPath, f.path,
		"keys", len(rec),
	))
	return rec, nil
}

func (b *Builder[T]) decodeFile(f fileSource) (record.Record, error) {
	data, err := b.opts.fs.ReadFile(f.path)
	if err != nil {
		return nil, errors.SourceRead(f.path, err)
	}
	v, err := f.decode(data)
	if err != nil {
		return nil, errors.SourceRead(f.path, err)
	}
	rec, ok := record.From(v)
	if !ok {
		return nil, errors.DecodeShape(f.path, v)
	}
	return rec, nil
}

// resolveEnv reads the variables the schema declares. Env files fill in
// names the process environment does not set.
func (b *Builder[T]) resolveEnv(ctx context.Context, log *logger.Logger) (record.Record, error) {
	lookup := b.opts.lookup
	if len(b.envFiles) > 0 {
		chain := envvar.Chain{lookup}
		for _, path := range b.envFiles {
			if !b.opts.fs.Exists(path) {
				log.Warn("env file not found, skipping", logger.Fields(logger.FieldPath, path))
				continue
			}
			vars, err := b.readDotenv(path)
			if err != nil {
				return nil, err
			}
			chain = append(chain, vars)
		}
		lookup = chain
	}

	r := &envvar.Resolver{
		Convention: b.opts.convention,
		Prefix:     b.opts.prefix,
		Lookup:     lookup,
	}
	env, hits := r.ResolveBindings(b.schema)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(observability.AttrEnvHits, len(hits)))
	for _, h := range hits {
		v, _ := record.Get(env, h.Path)
		log.Debug("env override", logger.Fields(
			logger.FieldEnvVar, h.Name,
			logger.FieldPath, strings.Join(h.Path, "."),
			"value", util.MaskSecret(fmt.Sprint(v), 2),
		))
	}
	return env, nil
}

func (b *Builder[T]) readDotenv(path string) (envvar.Map, error) {
	data, err := b.opts.fs.ReadFile(path)
	if err != nil {
		return nil, errors.SourceRead(path, err)
	}
	vars, err := envvar.ParseDotenv(data)
	if err != nil {
		return nil, errors.SourceRead(path, err)
	}
	return vars, nil
}

// validationError wraps validator failures. Schema and context errors pass
// through unchanged.
func validationError(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.ValidationFailed(err)
}

func outcome(err error) string {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return observability.OutcomeCanceled
	}
	appErr, ok := errors.AsAppError(err)
	switch {
	case !ok, errors.IsSourceCode(appErr.Code):
		return observability.OutcomeSourceError
	case appErr.Code == errors.ErrCodeValidation:
		return observability.OutcomeInvalid
	default:
		return observability.OutcomeSchemaError
	}
}
