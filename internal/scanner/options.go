// filepath: internal/scanner/options.go
package scanner

// Option configures a single scan.
type Option func(*options)

type options struct {
	onError func(error)
}

// WithErrorHandler registers fn to be called once for every failure a scan logs.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) report(err error) {
	if o.onError != nil {
		o.onError(err)
	}
}
