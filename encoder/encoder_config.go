package encoder

import (
	"fmt"

	"github.com/arloliu/pbcnf/engine"
	"github.com/arloliu/pbcnf/internal/options"
)

// EncoderConfig holds the handle configuration assembled from functional
// options.
type EncoderConfig struct {
	engine   engine.Engine
	validate bool
}

func newEncoderConfig(opts ...Option) (EncoderConfig, error) {
	cfg := EncoderConfig{
		engine:   engine.Default(),
		validate: true,
	}

	if err := options.Apply(&cfg, opts...); err != nil {
		return EncoderConfig{}, err
	}

	return cfg, nil
}

// Option represents a functional option for configuring an Encoder.
type Option = options.Option[*EncoderConfig]

// WithEngine selects the encoding engine backing the handle. The default
// is engine.Default(), the built-in reference engine.
func WithEngine(eng engine.Engine) Option {
	return options.New(func(cfg *EncoderConfig) error {
		if eng == nil {
			return fmt.Errorf("engine must not be nil")
		}
		cfg.engine = eng

		return nil
	})
}

// WithValidationDisabled turns off input validation (length pairing and
// zero-literal checks) on every operation.
//
// This restores the zero-overhead contract of boundaries that push the
// invariants onto the caller: the caller must then guarantee equal-length
// weight/literal sequences and nonzero literals externally, or behavior of
// the underlying engine is unspecified.
func WithValidationDisabled() Option {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.validate = false
	})
}
