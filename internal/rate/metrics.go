package rate

// Metrics receives fetch and conversion events. The prometheus-backed
// implementation lives in internal/metrics; NoopMetrics keeps the package
// usable as a plain library.
type Metrics interface {
	CacheHit()
	CacheMiss()
	UpstreamError()
	Conversion()
}

type NoopMetrics struct{}

func (NoopMetrics) CacheHit()      {}
func (NoopMetrics) CacheMiss()     {}
func (NoopMetrics) UpstreamError() {}
func (NoopMetrics) Conversion()    {}
