package variable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"member-template/internal/expand"
	"member-template/internal/model"
	"member-template/internal/resolve"
)

// Resolver resolves template variables against a type model.
type Resolver struct {
	model   model.TypeModel
	lineSep string
	logger  *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLineSeparator sets the text used for line breaks. The default is the
// platform line separator.
func WithLineSeparator(sep string) Option {
	return func(r *Resolver) {
		r.lineSep = sep
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver over tm.
func NewResolver(tm model.TypeModel, opts ...Option) *Resolver {
	r := &Resolver{
		model:   tm,
		lineSep: expand.PlatformLineSeparator(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ResolveBeanFieldTemplate expands params [template, separator, newline]
// over the bean fields of ref.
func (r *Resolver) ResolveBeanFieldTemplate(ref model.TypeRef, params []string) (expand.Result, error) {
	return r.Resolve(BeanFieldsNewline, ref, params)
}

// ResolveBeanFieldTemplate2 expands params [template, separator] over the
// bean fields of ref. The separator may use ${newline}.
func (r *Resolver) ResolveBeanFieldTemplate2(ref model.TypeRef, params []string) (expand.Result, error) {
	return r.Resolve(BeanFields, ref, params)
}

// ResolveFieldTemplate expands params [template, separator] over every field
// of ref. The separator may use ${newline}.
func (r *Resolver) ResolveFieldTemplate(ref model.TypeRef, params []string) (expand.Result, error) {
	return r.Resolve(Fields, ref, params)
}

// Resolve expands the variant's template over the members of ref.
//
// A parameter count other than the variant's arity yields a
// not-applicable Result and a nil error. A model failure yields an error
// matching model.ErrModelUnavailable and no text.
func (r *Resolver) Resolve(v Variant, ref model.TypeRef, params []string) (expand.Result, error) {
	if v.Arity() < 0 {
		return expand.NotApplicable(), fmt.Errorf("resolving %s: unknown variant %d", ref, int(v))
	}

	if err := expand.CheckArity(params, v.Arity()); err != nil {
		r.logger.Debug("template variable not applicable",
			"variable", v.String(),
			"type", ref.String(),
			"error", err)

		return expand.NotApplicable(), nil
	}

	entries, err := resolve.Resolve(r.model, ref, v.Strategy())
	if err != nil {
		r.logger.Debug("member resolution failed",
			"variable", v.String(),
			"type", ref.String(),
			"error", err)

		return expand.NotApplicable(), fmt.Errorf("resolving %s for %s: %w", v, ref, err)
	}

	text := expand.Expand(params[0], v.separator(params, r.lineSep), entries, v.substitution())

	r.logger.Debug("template variable resolved",
		"variable", v.String(),
		"type", ref.String(),
		"members", len(entries))

	return expand.Applied(text), nil
}

// IsModelUnavailable reports whether err came from a host that could not
// list members.
func IsModelUnavailable(err error) bool {
	return errors.Is(err, model.ErrModelUnavailable)
}
