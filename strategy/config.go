package strategy

// config holds the optional knobs Compile consults. It mirrors the
// teacher's functional-options convention (matrix.Option/MatrixOptions,
// builder.BuilderOption/builderConfig): an unexported struct, a public
// Option type, and a package-level set of With* constructors.
type config struct {
	userSteps []Step
	hasUser   bool
}

// Option configures a Compile call.
type Option func(*config)

// WithSteps supplies an explicit step list, bypassing auto-derivation.
// The list is validated (divisor product over Parallel steps equals P,
// memory recurrence <= S) and used verbatim, per spec.md §4.2.
func WithSteps(steps []Step) Option {
	return func(c *config) {
		c.userSteps = append([]Step(nil), steps...)
		c.hasUser = true
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
