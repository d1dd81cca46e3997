package overload

import (
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/grafana/exprtype/pkg/exprtype"
)

const (
	resultExact     = "exact"
	resultCast      = "cast"
	resultNoMatch   = "no_match"
	resultAmbiguous = "ambiguous"
	resultNotFound  = "not_found"
)

var metricResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "exprtype",
	Name:      "overload_resolutions_total",
	Help:      "The total number of function overload resolutions by result.",
}, []string{"result"})

// Match is the overload selected for a call.
type Match struct {
	Signature Signature
	// Distance is the sum of the per-argument widening distances.
	Distance exprtype.Distance
	// Casts holds, for each argument, the type it is converted to. It equals the
	// argument type when no conversion is needed.
	Casts []exprtype.Type
}

// NeedsCast reports whether any argument has to be implicitly converted.
func (m Match) NeedsCast() bool {
	return !m.Distance.IsIdentical()
}

// Registry owns the declared signatures of every function and selects the best
// overload for a call site using widening distances.
type Registry struct {
	logger   log.Logger
	tieBreak string

	mtx   sync.RWMutex
	funcs map[string][]Signature
}

func NewRegistry(cfg Config, logger log.Logger) (*Registry, error) {
	if cfg.TieBreak == "" {
		cfg.TieBreak = TieBreakError
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	r := &Registry{
		logger:   log.With(logger, "component", "overload"),
		tieBreak: cfg.TieBreak,
		funcs:    map[string][]Signature{},
	}

	sigs, err := cfg.Signatures()
	if err != nil {
		return nil, err
	}
	if err := r.Register(sigs...); err != nil {
		return nil, err
	}

	return r, nil
}

// Register adds overloads. Either all signatures are added or none is.
func (r *Registry) Register(sigs ...Signature) error {
	for _, s := range sigs {
		if err := validateSignature(s); err != nil {
			return err
		}
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	pending := map[string][]Signature{}
	for _, s := range sigs {
		key := strings.ToLower(s.Name)
		if existing, ok := findConflict(r.funcs[key], s); ok {
			return errors.Errorf("duplicate overload %s conflicts with %s", s, existing)
		}
		if existing, ok := findConflict(pending[key], s); ok {
			return errors.Errorf("duplicate overload %s conflicts with %s", s, existing)
		}
		pending[key] = append(pending[key], s)
	}

	for key, list := range pending {
		r.funcs[key] = append(r.funcs[key], list...)
	}
	for _, s := range sigs {
		level.Debug(r.logger).Log("msg", "registered overload", "signature", s.String())
	}

	return nil
}

func findConflict(sigs []Signature, s Signature) (Signature, bool) {
	for _, existing := range sigs {
		if existing.conflicts(s) {
			return existing, true
		}
	}
	return Signature{}, false
}

func validateSignature(s Signature) error {
	if s.Name == "" {
		return errors.Errorf("overload %s has no name", s)
	}
	for i, p := range s.Params {
		if !p.IsValid() || p == exprtype.TypeUnknown {
			return errors.Errorf("overload %s: invalid parameter %d type %s", s, i, p)
		}
	}
	if !s.Return.IsValid() || s.Return == exprtype.TypeUnknown {
		return errors.Errorf("overload %s: invalid return type %s", s, s.Return)
	}
	return nil
}

// Resolve selects the overload of name that accepts args with the smallest
// total widening distance.
func (r *Registry) Resolve(name string, args []exprtype.Type) (Match, error) {
	r.mtx.RLock()
	overloads := r.funcs[strings.ToLower(name)]
	r.mtx.RUnlock()

	if len(overloads) == 0 {
		metricResolutions.WithLabelValues(resultNotFound).Inc()
		return Match{}, errors.Wrap(ErrFunctionNotFound, name)
	}

	var best []Signature
	bestScore := exprtype.Impossible
	for _, s := range overloads {
		score := s.distance(args)
		switch {
		case score.IsImpossible():
			continue
		case score.Less(bestScore):
			best = []Signature{s}
			bestScore = score
		case score == bestScore:
			best = append(best, s)
		}
	}

	if len(best) == 0 {
		metricResolutions.WithLabelValues(resultNoMatch).Inc()
		return Match{}, &NoMatchError{Name: name, Args: append([]exprtype.Type(nil), args...)}
	}

	if len(best) > 1 && r.tieBreak == TieBreakError {
		metricResolutions.WithLabelValues(resultAmbiguous).Inc()
		level.Debug(r.logger).Log("msg", "ambiguous call", "function", name, "candidates", len(best))
		return Match{}, &AmbiguousError{Name: name, Args: append([]exprtype.Type(nil), args...), Candidates: best}
	}

	chosen := best[0]
	m := Match{
		Signature: chosen,
		Distance:  bestScore,
		Casts:     append([]exprtype.Type(nil), chosen.Params...),
	}

	result := resultExact
	if m.NeedsCast() {
		result = resultCast
	}
	metricResolutions.WithLabelValues(result).Inc()
	level.Debug(r.logger).Log("msg", "resolved call", "function", name, "overload", chosen.String(), "distance", bestScore.String())

	return m, nil
}

// Functions returns the registered function names in lexical order.
func (r *Registry) Functions() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overloads returns the signatures of name in registration order.
func (r *Registry) Overloads(name string) []Signature {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return append([]Signature(nil), r.funcs[strings.ToLower(name)]...)
}
