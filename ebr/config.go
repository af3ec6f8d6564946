package ebr

// DefaultAutoReclaimThreshold is the retire-queue length past which a
// Store automatically triggers a Collect, unless overridden by
// WithAutoReclaimThreshold or disabled by WithoutAutoReclaim.
const DefaultAutoReclaimThreshold = 64

// DefaultCleanupInterval is the number of Collect cycles between
// registry prunes, unless overridden by WithCleanupInterval.
const DefaultCleanupInterval = 16

// config holds the resolved configuration for a domain under
// construction. It is unexported; callers only ever see it through
// Option functions, matching the options-struct convention the rest of
// this module's lineage uses for configuration (see
// internal/ebr/gc.Engine's CleanupInterval field and, further back, the
// teacher's own DetectorOptions).
type config struct {
	autoReclaimThreshold *int // nil disables automatic collection.
	cleanupInterval      int
	logger               Logger
}

func newConfig() *config {
	threshold := DefaultAutoReclaimThreshold
	return &config{
		autoReclaimThreshold: &threshold,
		cleanupInterval:      DefaultCleanupInterval,
		logger:               noopLogger{},
	}
}

// Option configures a Domain at construction time. See NewDomain.
type Option func(*config)

// WithAutoReclaimThreshold sets the retire-queue length past which a
// Store triggers an automatic Collect on the same goroutine. A
// threshold of 0 means "collect on every store".
func WithAutoReclaimThreshold(n int) Option {
	return func(c *config) {
		c.autoReclaimThreshold = &n
	}
}

// WithoutAutoReclaim disables automatic collection entirely: the retire
// queue only shrinks when the writer calls Collect explicitly.
func WithoutAutoReclaim() Option {
	return func(c *config) {
		c.autoReclaimThreshold = nil
	}
}

// WithCleanupInterval sets the number of Collect cycles between
// registry prunes. Must be positive; NewDomain panics otherwise.
func WithCleanupInterval(n int) Option {
	return func(c *config) {
		c.cleanupInterval = n
	}
}
