package space

type options struct {
	labels  LabelConvention
	maxULPs uint64
}

// Option configures a vector space.
type Option func(*options)

// WithLabelConvention selects how labels are embedded in text records.
// The default is LabelLeading.
func WithLabelConvention(c LabelConvention) Option {
	return func(o *options) { o.labels = c }
}

// WithMaxULPs sets the ApproxEqual tolerance.
func WithMaxULPs(n uint64) Option {
	return func(o *options) { o.maxULPs = n }
}
