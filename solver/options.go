package solver

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/consensys/groebner/buchberger"
	"github.com/consensys/groebner/cache"
	"github.com/consensys/groebner/logger"
	"github.com/consensys/groebner/poly"
)

// Option defines option for altering the behavior of Solve. See the
// descriptions of functions returning instances of this type for
// implemented options.
type Option func(*Config) error

// Config is the configuration of a Solve call with all options applied.
type Config struct {
	Order              poly.Order // defaults to poly.Lex
	Priority           []string   // defaults to the system unknown order
	SkipExtraction     bool
	NoLinearFastPath   bool
	MaxIterations      int // defaults to buchberger.DefaultMaxIterations
	MaxBasisSize       int // defaults to buchberger.DefaultMaxBasisSize
	NbTasks            int // defaults to runtime.NumCPU()
	NoCoprimeCriterion bool
	NoChainCriterion   bool
	Logger             zerolog.Logger
	Store              *cache.Store // nil disables caching
}

// WithOrder sets the monomial order of the basis computation. Solution
// extraction needs poly.Lex; with any other order Solve stops at the basis.
func WithOrder(o poly.Order) Option {
	return func(opt *Config) error {
		if o != poly.Lex && o != poly.GrevLex {
			return fmt.Errorf("unknown monomial order %d", o)
		}
		opt.Order = o
		return nil
	}
}

// WithVariablePriority overrides the elimination order of the unknowns,
// highest priority first. The list must be a permutation of the system
// unknowns.
func WithVariablePriority(vars ...string) Option {
	return func(opt *Config) error {
		if len(vars) == 0 {
			return fmt.Errorf("empty variable priority")
		}
		opt.Priority = vars
		return nil
	}
}

// WithoutSolutionExtraction stops Solve after the basis computation; the
// result carries the reduced Groebner basis and no solutions.
func WithoutSolutionExtraction() Option {
	return func(opt *Config) error {
		opt.SkipExtraction = true
		return nil
	}
}

// WithoutLinearFastPath forces systems of degree one through the Groebner
// pipeline instead of plain Gaussian elimination. The result is the same;
// the option exists to exercise or benchmark the general path.
func WithoutLinearFastPath() Option {
	return func(opt *Config) error {
		opt.NoLinearFastPath = true
		return nil
	}
}

// WithMaxIterations bounds the number of critical pairs the basis engine
// may treat before giving up with buchberger.ErrResourceExceeded.
func WithMaxIterations(n int) Option {
	return func(opt *Config) error {
		if n <= 0 {
			return fmt.Errorf("invalid iteration budget: %d", n)
		}
		opt.MaxIterations = n
		return nil
	}
}

// WithMaxBasisSize bounds the size of the intermediate basis.
func WithMaxBasisSize(n int) Option {
	return func(opt *Config) error {
		if n <= 0 {
			return fmt.Errorf("invalid basis size budget: %d", n)
		}
		opt.MaxBasisSize = n
		return nil
	}
}

// WithNbTasks sets the number of parallel workers reducing S-polynomials.
// If not set, then the number of workers is set to runtime.NumCPU().
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of threads: %d", nbTasks)
		}
		if nbTasks > 512 {
			// limit the number of tasks to 512. This is to avoid possible
			// saturation of the runtime scheduler.
			nbTasks = 512
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// WithoutCoprimeCriterion disables the coprime pair elimination in the
// basis engine. The computed basis does not change, only the work done.
func WithoutCoprimeCriterion() Option {
	return func(opt *Config) error {
		opt.NoCoprimeCriterion = true
		return nil
	}
}

// WithoutChainCriterion disables Buchberger's chain criterion in the basis
// engine. The computed basis does not change, only the work done.
func WithoutChainCriterion() Option {
	return func(opt *Config) error {
		opt.NoChainCriterion = true
		return nil
	}
}

// WithLogger specifies a zerolog.Logger as a destination for the logs
// printed by the solver. By default, uses the groebner logger.
// zerolog.Nop() will disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithCache reuses previously computed bases from store and adds new ones
// to it. Keys cover the field, the variable list, the order and the
// generators, so a hit is always an exact replay.
func WithCache(store *cache.Store) Option {
	return func(opt *Config) error {
		if store == nil {
			return fmt.Errorf("nil cache store")
		}
		opt.Store = store
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{
		Order:         poly.Lex,
		MaxIterations: buchberger.DefaultMaxIterations,
		MaxBasisSize:  buchberger.DefaultMaxBasisSize,
		NbTasks:       runtime.NumCPU(),
		Logger:        logger.Logger(),
	}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
