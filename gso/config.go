package gso

// Config holds the engine's construction-time flags. Each is independent
// except where noted on its Option constructor. The zero Config is the
// "plain" engine: floating Gram, no transform tracking, no row exponent
// scaling, columns unlocked.
type Config struct {
	intGram             bool
	rowExpoEnabled      bool
	transformEnabled    bool
	invTransformEnabled bool
	colsLocked          bool
	rowOpForceLong      bool
}

// Option configures a GSO at construction time, in the functional-options
// style. mat.QR and mat.Cholesky take no such flags, but the flag surface
// here is wide enough that a struct of named options reads better than a
// long constructor signature.
type Option func(*Config)

// WithIntGram keeps an exact integer Gram matrix g alongside b. It is
// incompatible with WithColsLocked.
func WithIntGram() Option { return func(c *Config) { c.intGram = true } }

// WithRowExpo maintains bf in a per-row scaled domain with row_expo[i].
// Only meaningful when WithIntGram is not also set.
func WithRowExpo() Option { return func(c *Config) { c.rowExpoEnabled = true } }

// WithTransform maintains u, the cumulative unimodular transformation.
func WithTransform() Option { return func(c *Config) { c.transformEnabled = true } }

// WithInvTransform additionally maintains u_inv_t, the transpose of the
// inverse transformation. It requires WithTransform and forbids RowSwap.
func WithInvTransform() Option { return func(c *Config) { c.invTransformEnabled = true } }

// WithColsLocked freezes n_known_cols from construction. Incompatible with
// WithIntGram.
func WithColsLocked() Option { return func(c *Config) { c.colsLocked = true } }

// WithRowOpForceLong prefers the long-mantissa+exponent code path
// (row_addmul_si_2exp) over an arbitrary-precision multiplicand
// (row_addmul_2exp) when row_addmul_we scales a row.
func WithRowOpForceLong() Option { return func(c *Config) { c.rowOpForceLong = true } }

func newConfig(opts []Option) (Config, error) {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	if c.invTransformEnabled && !c.transformEnabled {
		return c, ErrConfig
	}
	if c.intGram && c.colsLocked {
		return c, ErrConfig
	}
	return c, nil
}
