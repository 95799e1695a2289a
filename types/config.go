package types

// Config carries the ambient, cross-cutting dependencies every component
// and every system needs but none of them should construct for
// themselves: the logger, free-form engine-wide properties, and
// user-defined functions callable from scripted signal components. It is
// built once with NewConfig and threaded through Configure calls,
// mirroring the functional-options shape used throughout this module.
type Config struct {
	Logger     Logger
	Properties map[string]any
	Udf        map[string]any
}

// Option mutates a Config during construction. Options are applied in
// order, so a later option can override an earlier one.
type Option func(*Config) error

// NewConfig builds a Config with sane defaults (a stderr logger, empty
// property and UDF maps) and applies opts in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		Logger:     DefaultLogger(),
		Properties: map[string]any{},
		Udf:        map[string]any{},
	}
	for _, opt := range opts {
		// Construction-time options never fail in practice (they only
		// assign fields); the error return exists so options that do
		// validate have somewhere to report it.
		_ = opt(&c)
	}
	return c
}

// WithLogger overrides the default logger.
func WithLogger(l Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithProperties seeds the engine-wide property map.
func WithProperties(props map[string]any) Option {
	return func(c *Config) error {
		for k, v := range props {
			c.Properties[k] = v
		}
		return nil
	}
}

// WithUdf registers a single user-defined function under name, reachable
// from script.ExprComponent scripts as udf; script.JSComponent does not
// expose UDFs.
func WithUdf(name string, fn any) Option {
	return func(c *Config) error {
		c.Udf[name] = fn
		return nil
	}
}

// RegisterUdf adds a user-defined function to an already-built Config.
func (c *Config) RegisterUdf(name string, fn any) {
	if c.Udf == nil {
		c.Udf = map[string]any{}
	}
	c.Udf[name] = fn
}
