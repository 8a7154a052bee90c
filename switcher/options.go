package switcher

// Option configures a single switch.
type Option[O any] func(*options[O])

type options[O any] struct {
	defaultValue O
	hasDefault   bool
}

// WithDefault sets the value returned when no clause matches.
func WithDefault[O any](value O) Option[O] {
	return func(o *options[O]) {
		o.defaultValue = value
		o.hasDefault = true
	}
}

func newOptions[O any](opts []Option[O]) options[O] {
	var o options[O]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options[O]) fallback() (O, bool) {
	return o.defaultValue, o.hasDefault
}
