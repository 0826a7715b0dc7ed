package response

// Option customizes a single envelope.
type Option func(*options)

type options struct {
	statusCode int
	headers    map[string]string
}

// WithStatusCode overrides the default status code.
func WithStatusCode(code int) Option {
	return func(o *options) {
		o.statusCode = code
	}
}

// WithHeaders merges headers over the defaults. Later options win.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithHeader sets a single header.
func WithHeader(name, value string) Option {
	return func(o *options) {
		o.headers[name] = value
	}
}

func buildOptions(defaultStatus int, opts []Option) options {
	o := options{
		statusCode: defaultStatus,
		headers:    DefaultHeaders(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
