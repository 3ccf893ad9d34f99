package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/domain/repository"
	"timefilter-core/internal/logger"
)

// Interpreter asks the filter model which time filter a query implies and turns
// its answer into a TimeFilterDecision. It holds no per-query state.
type Interpreter struct {
	provider repository.TextCompletionProvider
	now      func() time.Time
}

func NewInterpreter(provider repository.TextCompletionProvider) *Interpreter {
	return &Interpreter{provider: provider, now: time.Now}
}

// WithClock replaces the clock used for relative cutoffs.
func (i *Interpreter) WithClock(now func() time.Time) *Interpreter {
	i.now = now
	return i
}

// Interpret never fails: any problem with the model or its answer yields no cutoff
// and no recency bias.
func (i *Interpreter) Interpret(ctx context.Context, query string) entity.TimeFilterDecision {
	decision, err := i.Extract(ctx, query)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("time filter extraction degraded to no filter")
		return entity.TimeFilterDecision{}
	}
	return decision
}

// Extract is Interpret but reports model failures (including timeouts) as
// entity.ErrModelUnavailable. Malformed answers are still not errors.
func (i *Interpreter) Extract(ctx context.Context, query string) (entity.TimeFilterDecision, error) {
	start := time.Now()
	out, err := i.provider.Complete(ctx, FilterPrompt(query))
	if err != nil {
		return entity.TimeFilterDecision{}, fmt.Errorf("%w: %w", entity.ErrModelUnavailable, err)
	}

	decision := i.decide(out)

	log := logger.C(ctx).Debug().Str("model_output", out).Bool("favor_recent", decision.FavorRecent).Dur("took", time.Since(start))
	if decision.Cutoff != nil {
		log = log.Time("cutoff", *decision.Cutoff)
	}
	log.Msg("time filter extracted")

	return decision, nil
}

func (i *Interpreter) decide(out string) entity.TimeFilterDecision {
	answer, ok := decodeAnswer(out)
	if !ok {
		return entity.TimeFilterDecision{}
	}

	// Without a category we can't tell a date from noise, so no filter.
	filterType, ok := answer["filter_type"].(string)
	if !ok {
		return entity.TimeFilterDecision{}
	}
	if !strings.Contains(filterType, "hard") && !strings.Contains(filterType, "recent") {
		return entity.TimeFilterDecision{}
	}
	favorRecent := strings.Contains(filterType, "recent")

	if date, ok := answer["date"].(string); ok {
		if cutoff, ok := parseLiteralDate(date); ok {
			return entity.TimeFilterDecision{Cutoff: &cutoff, FavorRecent: favorRecent}
		}
	}

	if value, ok := answer["filter_value"].(string); ok {
		if days, ok := relativeDays(value, multiplier(answer["value_multiple"])); ok {
			cutoff := daysBefore(i.now().UTC(), days)
			return entity.TimeFilterDecision{Cutoff: &cutoff, FavorRecent: favorRecent}
		}
	}

	return entity.TimeFilterDecision{FavorRecent: favorRecent}
}

// decodeAnswer parses the model output as a JSON object. Raw control characters
// inside strings and bare NaN/Infinity literals are accepted, duplicate keys keep
// the last value.
func decodeAnswer(out string) (entity.ModelFilterAnswer, bool) {
	var answer entity.ModelFilterAnswer
	if err := json.Unmarshal([]byte(relaxJSON(strings.TrimSpace(out))), &answer); err != nil {
		return nil, false
	}
	if answer == nil {
		return nil, false
	}
	return answer, true
}

// relaxJSON rewrites raw control characters found inside JSON strings as \u
// escapes, and NaN, Infinity and -Infinity outside strings as null, so
// encoding/json accepts them.
func relaxJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && ch == '\\':
			escaped = true
		case ch == '"':
			inString = !inString
		case inString && ch < 0x20:
			fmt.Fprintf(&b, `\u%04x`, ch)
			continue
		case !inString:
			if n := nonFiniteLiteral(s[i:]); n > 0 {
				b.WriteString("null")
				i += n - 1
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// nonFiniteLiteral returns the length of a leading NaN, Infinity or -Infinity, or 0.
func nonFiniteLiteral(s string) int {
	for _, lit := range []string{"NaN", "Infinity", "-Infinity"} {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}
	}
	return 0
}

// multiplier reads value_multiple, defaulting to 1 when absent or unusable.
func multiplier(raw any) float64 {
	m := 1.0
	switch v := raw.(type) {
	case float64:
		m = v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			m = f
		}
	}
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 1.0
	}
	return m
}
