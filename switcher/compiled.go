package switcher

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/on-the-ground/switcher_go/internal/logging"
	"github.com/on-the-ground/switcher_go/switcher/loose"
)

// Switcher is a compiled, reusable switch.
// Keyed definitions are indexed at compile time so a lookup does not scan
// the entries; the selected value is always the one Switch would return.
// A Switcher is immutable and safe for concurrent use.
type Switcher[I, O any] struct {
	id     uuid.UUID
	def    Definition[I, O]
	opts   options[O]
	logger *zap.Logger

	byText   map[string]int
	byNumber map[float64]int
}

// Compile prepares def for repeated matching.
func Compile[I, O any](def Definition[I, O], opts ...Option[O]) *Switcher[I, O] {
	s := &Switcher[I, O]{
		id:     uuid.New(),
		def:    def,
		opts:   newOptions(opts),
		logger: zap.NewNop(),
	}
	if def.shape == ShapeKeyed {
		s.index()
	}
	return s
}

// index records the first position of every key, both as text and as a
// number. Keys that are not numeric literals only land in the text index.
func (s *Switcher[I, O]) index() {
	s.byText = make(map[string]int, len(s.def.keys))
	s.byNumber = make(map[float64]int, len(s.def.keys))
	for i, e := range s.def.keys {
		if _, seen := s.byText[e.Key]; !seen {
			s.byText[e.Key] = i
		}
		n := loose.ToNumber(e.Key)
		if math.IsNaN(n) {
			continue
		}
		if _, seen := s.byNumber[n]; !seen {
			s.byNumber[n] = i
		}
	}
}

// WithLogger returns a copy of s reporting its decisions to logger at debug level.
func (s *Switcher[I, O]) WithLogger(logger *zap.Logger) *Switcher[I, O] {
	cp := *s
	cp.logger = logging.OrNop(logger)
	return &cp
}

func (s *Switcher[I, O]) ID() uuid.UUID {
	return s.id
}

func (s *Switcher[I, O]) Shape() Shape {
	return s.def.shape
}

// Match selects the value for variable, falling back to the default.
func (s *Switcher[I, O]) Match(variable I) (O, bool) {
	if v, pos, ok := s.lookup(variable); ok {
		s.debug("switcher matched", zap.Int("clause", pos))
		return v, true
	}
	if v, ok := s.opts.fallback(); ok {
		s.debug("switcher fell back to default")
		return v, true
	}
	s.debug("switcher found no match")
	var zero O
	return zero, false
}

func (s *Switcher[I, O]) lookup(variable I) (O, int, bool) {
	if s.def.shape != ShapeKeyed {
		return s.def.match(variable)
	}

	var zero O
	k, ok := loose.Canonical(variable)
	if !ok {
		return zero, -1, false
	}

	var pos int
	switch k.Kind {
	case loose.KindText:
		pos, ok = s.byText[k.Text]
	case loose.KindNumber:
		pos, ok = s.byNumber[k.Number]
	default:
		ok = false
	}
	if !ok {
		return zero, -1, false
	}
	return s.def.keys[pos].Value, pos, true
}

func (s *Switcher[I, O]) debug(msg string, fields ...zap.Field) {
	ce := s.logger.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}
	ce.Write(append(fields,
		zap.Stringer("switcher", s.id),
		zap.Stringer("shape", s.def.shape),
	)...)
}
