package sundae

import "log/slog"

// Option configures a View during construction.
//
// Example:
//
//	v, err := sundae.New(sundae.Background1,
//	    sundae.WithLoader(sundae.FileLoader{Root: "~/sundae"}),
//	    sundae.WithStatusDescription(false))
type Option func(*viewOptions)

type viewOptions struct {
	loader            ImageLoader
	profile           Profile
	stack             Stack
	statusDescription bool
	logger            *slog.Logger
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		loader:            FileLoader{},
		profile:           DefaultProfile(),
		stack:             nil, // DefaultStack(profile) if unset
		statusDescription: true,
		logger:            nil, // package Logger() if unset
	}
}

// WithLoader sets the image loader. The default is a FileLoader reading
// from the working directory.
func WithLoader(l ImageLoader) Option {
	return func(o *viewOptions) {
		o.loader = l
	}
}

// WithProfile sets the cosmetic profile. Unless WithStack is also given,
// the default stack is positioned from this profile.
func WithProfile(p Profile) Option {
	return func(o *viewOptions) {
		o.profile = p
	}
}

// WithStack replaces the default bowl, scoop and syrup stack.
func WithStack(s Stack) Option {
	return func(o *viewOptions) {
		o.stack = s.clone()
	}
}

// WithStatusDescription controls whether the status text lists the layers
// after the background name. Enabled by default.
func WithStatusDescription(on bool) Option {
	return func(o *viewOptions) {
		o.statusDescription = on
	}
}

// WithLogger sets a per-view logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *viewOptions) {
		o.logger = l
	}
}
