package chart

import "log/slog"

type readOpts struct {
	logger   *slog.Logger
	warnFunc func(Warning)
}

type ReadOption func(*readOpts)

// WithLogger sets the logger warnings are written to at warn level. The
// default is slog.Default(); a nil logger disables logging.
func WithLogger(l *slog.Logger) ReadOption {
	return func(o *readOpts) { o.logger = l }
}

// WithWarnFunc registers f to be called with each warning as it occurs.
func WithWarnFunc(f func(Warning)) ReadOption {
	return func(o *readOpts) { o.warnFunc = f }
}

func newReadOpts(opts []ReadOption) *readOpts {
	o := &readOpts{logger: slog.Default()}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *readOpts) emit(w Warning) {
	if o.logger != nil {
		o.logger.Warn(w.Kind.String(), w.logAttrs()...)
	}
	if o.warnFunc != nil {
		o.warnFunc(w)
	}
}
