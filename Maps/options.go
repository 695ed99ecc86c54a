package Maps

import DataStructures "github.com/jdkandersson/algorithms-data-structures"

// Option represents the optional function.
type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := &Options{Hasher: DataStructures.XXHasher{}}
	for _, option := range options {
		option(opts)
	}
	if opts.Hasher == nil {
		opts.Hasher = DataStructures.XXHasher{}
	}
	return opts
}

// Options contains all options which will be applied when instantiating a HashMap.
type Options struct {
	// Hasher picks the bucket of a key. Defaults to DataStructures.XXHasher.
	Hasher DataStructures.Hasher
}

// WithOptions accepts the whole options config.
func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

// WithHasher sets the hasher used to pick buckets.
func WithHasher(hasher DataStructures.Hasher) Option {
	return func(opts *Options) {
		opts.Hasher = hasher
	}
}
