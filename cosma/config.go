package cosma

import (
	"log/slog"

	"github.com/cosma-go/cosma/internal/log"
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/strategy"
)

// Profiler receives coarse-grained timing hooks around a Multiply call.
// Its body is intentionally out of scope per spec.md §1 ("profiling
// instrumentation" is a named external collaborator) — Config only
// carries the interface so an instrumented build can plug one in
// without cosma depending on any particular backend.
type Profiler interface {
	// StrategyCompiled is called once, after strategy.Compile returns,
	// with the chosen step count and effective process count.
	StrategyCompiled(steps int, effectiveP int)
	// LeafExecuted is called once per recursion-leaf GEMM invocation on
	// every participating rank.
	LeafExecuted(rank int)
}

// noopProfiler discards every hook; it is Config's zero-value default so
// Multiply never needs a nil check at a profiling call site.
type noopProfiler struct{}

func (noopProfiler) StrategyCompiled(int, int) {}
func (noopProfiler) LeafExecuted(int)          {}

// TransportKind selects between cosma's two conceptual transport modes
// for a future real (non-in-process) Communicator — spec.md §6's
// "transport backend selection (one-sided vs two-sided)" knob. The
// shipped transport.InProcess implementation behaves identically under
// either value (it has no wire protocol to select between); the setting
// is threaded through Config purely so a caller targeting a real
// transport has somewhere to express the preference.
type TransportKind int

const (
	// TransportTwoSided selects explicit send/recv-style messaging.
	TransportTwoSided TransportKind = iota
	// TransportOneSided selects put/get-style messaging.
	TransportOneSided
)

// Config holds every knob Multiply consults, assembled from the Option
// values a caller passes in. Its zero value is never used directly:
// newConfig always runs normalize() first, mirroring the teacher's
// matrix.Options / flow.FlowOptions.normalize() pattern of a private
// struct filled exclusively through functional options plus one
// defaulting pass.
type Config struct {
	memoryLimit   int
	kind          scalar.Kind
	hasKind       bool
	steps         []strategy.Step
	hasSteps      bool
	parseErr      error
	transportKind TransportKind
	topologyAware bool
	logger        *slog.Logger
	profiler      Profiler
	tileBlockSize int
}

// Option configures a Multiply call.
type Option func(*Config)

// WithMemoryLimit sets S, the maximum number of elements (not bytes) a
// single process may hold at any moment during the multiply. Zero (the
// default) means unbounded.
func WithMemoryLimit(elements int) Option {
	return func(c *Config) { c.memoryLimit = elements }
}

// WithKind overrides the element Kind used to dispatch the local GEMM
// kernel. Defaults to scalar.Complex128, the widest representable type,
// so callers multiplying real matrices must opt into the narrower Kind
// explicitly rather than silently losing the imaginary lanes layout.Native
// always carries internally.
func WithKind(kind scalar.Kind) Option {
	return func(c *Config) {
		c.kind = kind
		c.hasKind = true
	}
}

// WithStrategy parses spec with strategy.Parse and supplies it verbatim
// to strategy.Compile, bypassing auto-derivation. A malformed spec is
// reported at Multiply-call time via the returned error, not here,
// keeping Option constructors infallible per the teacher's functional-
// options convention.
func WithStrategy(spec string) Option {
	return func(c *Config) {
		steps, err := strategy.Parse(spec)
		if err != nil {
			c.parseErr = err
			return
		}
		c.steps = steps
		c.hasSteps = true
	}
}

// WithSteps supplies an explicit, already-validated step list, bypassing
// both the DSL parser and auto-derivation.
func WithSteps(steps []strategy.Step) Option {
	return func(c *Config) {
		c.steps = append([]strategy.Step(nil), steps...)
		c.hasSteps = true
	}
}

// WithTransport selects the conceptual transport backend (see
// TransportKind's doc comment for why this is currently advisory).
func WithTransport(kind TransportKind) Option {
	return func(c *Config) { c.transportKind = kind }
}

// WithTopologyAware toggles topology-aware rank relabelling. The shipped
// transport.InProcess communicator has no physical topology to relabel
// against (every simulated rank is equidistant, same-process goroutine
// communication), so this is carried as a documented no-op control knob
// for a real network transport rather than wired to any behavior here —
// see DESIGN.md.
func WithTopologyAware(enabled bool) Option {
	return func(c *Config) { c.topologyAware = enabled }
}

// WithLogger supplies a structured logger for strategy-compile and
// multiply-call boundaries. A nil logger is ignored (the default
// internal/log.Nop() logger remains in effect).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProfiler supplies a Profiler implementation. A nil profiler is
// ignored.
func WithProfiler(p Profiler) Option {
	return func(c *Config) {
		if p != nil {
			c.profiler = p
		}
	}
}

// WithTileHeuristic sets the local-tile block size hint passed to the
// GEMM kernel's cache-blocked inner loop (spec.md §6's "local-tile
// heuristics for the GEMM" control knob). Zero or negative selects
// gemm.DefaultTileHeuristic.
func WithTileHeuristic(blockSize int) Option {
	return func(c *Config) { c.tileBlockSize = blockSize }
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.normalize()

	return cfg
}

// normalize fills every field an Option didn't touch with its documented
// default, following flow.FlowOptions.normalize()'s single-defaulting-
// pass convention.
func (c *Config) normalize() {
	if !c.hasKind {
		c.kind = scalar.Complex128
	}
	if c.logger == nil {
		c.logger = log.Nop()
	}
	if c.profiler == nil {
		c.profiler = noopProfiler{}
	}
	if c.tileBlockSize <= 0 {
		c.tileBlockSize = defaultTileBlockSize
	}
}

// defaultTileBlockSize is gemm's reference cache-blocking tile edge
// length, used when no WithTileHeuristic override is supplied.
const defaultTileBlockSize = 64
