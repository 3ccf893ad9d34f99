package usecase

import (
	"context"
	"time"

	"timefilter-core/internal/domain/entity"
)

// Resolver merges caller supplied filters with the ones inferred from the query.
// Values the caller set always win.
type Resolver struct {
	interpreter       *Interpreter
	disableExtraction bool
}

// NewResolver builds a Resolver. When disableExtraction is true the interpreter is
// never consulted, whatever the request asks for.
func NewResolver(interpreter *Interpreter, disableExtraction bool) *Resolver {
	return &Resolver{interpreter: interpreter, disableExtraction: disableExtraction}
}

func (r *Resolver) Resolve(ctx context.Context, req entity.FilterRequest) entity.TimeFilterDecision {
	explicitCutoff := utc(req.ExplicitCutoff)

	if !req.AutoDetectEnabled || r.disableExtraction || r.interpreter == nil {
		favorRecent := false
		if req.ExplicitFavorRecent != nil {
			favorRecent = *req.ExplicitFavorRecent
		}
		return entity.TimeFilterDecision{Cutoff: explicitCutoff, FavorRecent: favorRecent}
	}

	decision := r.interpreter.Interpret(ctx, req.Query)
	if explicitCutoff != nil {
		decision.Cutoff = explicitCutoff
	}
	if req.ExplicitFavorRecent != nil {
		decision.FavorRecent = *req.ExplicitFavorRecent
	}
	return decision
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
