package resname

import (
	"github.com/rs/zerolog"
)

type ResolverOption func(*Resolver) *Resolver

// WithLogger sets the logger that reports unresolved references at debug
// level.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// Resolver resolves references found in the resources of one namespace.
type Resolver struct {
	index     ResourceIndex
	namespace string
	logger    zerolog.Logger
}

// NewResolver constructs a Resolver that looks names up in the given index
// and qualifies references against the given namespace.
func NewResolver(index ResourceIndex, namespace string, options ...ResolverOption) *Resolver {
	r := &Resolver{
		index:     index,
		namespace: namespace,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// Namespace returns the context namespace of the resolver.
func (r *Resolver) Namespace() string {
	return r.namespace
}

// Qualify qualifies the reference against the resolver namespace and the
// given default type.
func (r *Resolver) Qualify(ref, defaultType string) (Name, bool) {
	return Qualify(ref, r.namespace, defaultType)
}

// ResolveID implements ResolveID for the resolver index and namespace.
func (r *Resolver) ResolveID(ref string) (int, bool, error) {
	id, ok, reason, err := resolveID(r.index, ref, r.namespace)
	if err != nil {
		r.logger.Debug().Err(err).Str("ref", ref).Str("namespace", r.namespace).Msg("malformed resource reference")
		return 0, false, err
	}
	if !ok {
		r.logger.Debug().
			Str("ref", ref).
			Str("namespace", r.namespace).
			Str("reason", string(reason)).
			Msg("unresolved resource reference")
	}
	return id, ok, nil
}

// ResolveName returns the canonical name of the reference, as QualifyReference
// does for the resolver namespace.
func (r *Resolver) ResolveName(ref string) (Name, bool, error) {
	return QualifyReference(ref, r.namespace)
}
