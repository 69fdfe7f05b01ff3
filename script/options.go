package script

import "io"

const (
	// DefaultSeparator is the string printed between values of a container.
	DefaultSeparator = " "

	// DefaultContainer is the kind of container scripts start with when they
	// do not name one.
	DefaultContainer = Singly
)

// Config carries the configuration of a Runner.
type Config struct {
	Output    io.Writer
	Separator string
	Strict    bool
	Container Kind
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:    io.Discard,
		Separator: DefaultSeparator,
		Container: DefaultContainer,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Runner instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Output is a runner configuration option setting the writer that printed
// values are written to.
//
// Default: io.Discard
func Output(w io.Writer) Option {
	return option(func(config *Config) { config.Output = w })
}

// Separator is a runner configuration option setting the string written
// between values by the print command.
//
// Default: " "
func Separator(sep string) Option {
	return option(func(config *Config) { config.Separator = sep })
}

// Strict is a runner configuration option which turns missing targets and
// empty containers into errors instead of silent no-ops.
//
// Default: false
func Strict(strict bool) Option {
	return option(func(config *Config) { config.Strict = strict })
}

// Container is a runner configuration option setting the kind of container
// scripts start with when they do not name one.
//
// Default: singly
func Container(kind Kind) Option {
	return option(func(config *Config) { config.Container = kind })
}
