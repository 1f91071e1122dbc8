// Package metrics is a small self-contained metrics registry that renders
// the Prometheus text exposition format. Counters, gauges, and histograms
// are grouped into families by base name; labeled series are addressed by
// baking the label pairs into the metric name via WithLabels.
package metrics

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuckets are the histogram buckets used when none are given, in
// seconds.
var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

// Counter only goes up.
type Counter struct{ n atomic.Int64 }

func (c *Counter) Inc()            { c.n.Add(1) }
func (c *Counter) Add(delta int64) { c.n.Add(delta) }
func (c *Counter) Value() int64    { return c.n.Load() }

// Gauge goes up and down.
type Gauge struct{ n atomic.Int64 }

func (g *Gauge) Set(v int64)  { g.n.Store(v) }
func (g *Gauge) Inc()         { g.n.Add(1) }
func (g *Gauge) Dec()         { g.n.Add(-1) }
func (g *Gauge) Value() int64 { return g.n.Load() }

// Histogram tracks a distribution over fixed buckets. Counts are stored
// cumulatively, matching how Prometheus expects them rendered.
type Histogram struct {
	mu     sync.Mutex
	bounds []float64
	cum    []uint64
	sum    float64
	count  uint64
}

func newHistogram(bounds []float64) *Histogram {
	b := make([]float64, len(bounds))
	copy(b, bounds)
	sort.Float64s(b)
	return &Histogram{bounds: b, cum: make([]uint64, len(b))}
}

// Observe records one value.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sum += v
	h.count++
	for i := sort.SearchFloat64s(h.bounds, v); i < len(h.cum); i++ {
		h.cum[i]++
	}
}

// Since observes the seconds elapsed from t.
func (h *Histogram) Since(t time.Time) {
	h.Observe(time.Since(t).Seconds())
}

func (h *Histogram) snapshot() (bounds []float64, cum []uint64, sum float64, count uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cum = make([]uint64, len(h.cum))
	copy(cum, h.cum)
	return h.bounds, cum, h.sum, h.count
}

type kind uint8

const (
	kindCounter kind = iota
	kindGauge
	kindHistogram
)

func (k kind) String() string {
	switch k {
	case kindGauge:
		return "gauge"
	case kindHistogram:
		return "histogram"
	}
	return "counter"
}

// family groups all series sharing a base name. Series are keyed by their
// label suffix, "" for the unlabeled series.
type family struct {
	name   string
	help   string
	kind   kind
	series map[string]any
}

// Registry holds metric families in registration order.
type Registry struct {
	mu   sync.Mutex
	fams []*family
	idx  map[string]*family
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{idx: make(map[string]*family)}
}

// family returns the family for base, creating it on first use. Callers
// hold mu.
func (r *Registry) family(base string, k kind, help string) *family {
	fam, ok := r.idx[base]
	if !ok {
		fam = &family{name: base, kind: k, series: make(map[string]any)}
		r.idx[base] = fam
		r.fams = append(r.fams, fam)
	}
	if fam.help == "" {
		fam.help = help
	}
	return fam
}

// Counter returns the counter for name, creating it on first use. Use
// WithLabels to address a labeled series.
func (r *Registry) Counter(name, help string) *Counter {
	base, labels := splitName(name)
	r.mu.Lock()
	defer r.mu.Unlock()

	fam := r.family(base, kindCounter, help)
	if c, ok := fam.series[labels].(*Counter); ok {
		return c
	}
	c := &Counter{}
	if fam.kind == kindCounter {
		fam.series[labels] = c
	}
	return c
}

// Gauge returns the gauge for name, creating it on first use.
func (r *Registry) Gauge(name, help string) *Gauge {
	base, labels := splitName(name)
	r.mu.Lock()
	defer r.mu.Unlock()

	fam := r.family(base, kindGauge, help)
	if g, ok := fam.series[labels].(*Gauge); ok {
		return g
	}
	g := &Gauge{}
	if fam.kind == kindGauge {
		fam.series[labels] = g
	}
	return g
}

// Histogram returns the histogram for name, creating it with the given
// buckets (DefaultBuckets when nil) on first use.
func (r *Registry) Histogram(name, help string, buckets []float64) *Histogram {
	if buckets == nil {
		buckets = DefaultBuckets
	}
	base, labels := splitName(name)
	r.mu.Lock()
	defer r.mu.Unlock()

	fam := r.family(base, kindHistogram, help)
	if h, ok := fam.series[labels].(*Histogram); ok {
		return h
	}
	h := newHistogram(buckets)
	if fam.kind == kindHistogram {
		fam.series[labels] = h
	}
	return h
}

// WithLabels bakes label pairs into a metric name:
// WithLabels("x_total", "k", "v") yields `x_total{k="v"}`. Odd or empty
// label lists leave the name unchanged.
func WithLabels(name string, kvs ...string) string {
	if len(kvs) == 0 || len(kvs)%2 != 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i := 0; i < len(kvs); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", kvs[i], kvs[i+1])
	}
	b.WriteByte('}')
	return b.String()
}

// splitName separates a metric name into its base name and label suffix
// (including braces), e.g. `x{k="v"}` -> ("x", `{k="v"}`).
func splitName(name string) (string, string) {
	if i := strings.IndexByte(name, '{'); i >= 0 {
		return name[:i], name[i:]
	}
	return name, ""
}

// mergeLabels appends one extra label to a suffix produced by splitName.
func mergeLabels(suffix, extra string) string {
	if suffix == "" {
		return "{" + extra + "}"
	}
	return suffix[:len(suffix)-1] + "," + extra + "}"
}

// Render emits all families in the Prometheus text format.
func (r *Registry) Render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, fam := range r.fams {
		if fam.help != "" {
			fmt.Fprintf(&b, "# HELP %s %s\n", fam.name, fam.help)
		}
		fmt.Fprintf(&b, "# TYPE %s %s\n", fam.name, fam.kind)

		suffixes := make([]string, 0, len(fam.series))
		for s := range fam.series {
			suffixes = append(suffixes, s)
		}
		sort.Strings(suffixes)

		for _, suffix := range suffixes {
			switch m := fam.series[suffix].(type) {
			case *Counter:
				fmt.Fprintf(&b, "%s%s %d\n", fam.name, suffix, m.Value())
			case *Gauge:
				fmt.Fprintf(&b, "%s%s %d\n", fam.name, suffix, m.Value())
			case *Histogram:
				bounds, cum, sum, count := m.snapshot()
				for i, bound := range bounds {
					le := fmt.Sprintf(`le="%g"`, bound)
					fmt.Fprintf(&b, "%s_bucket%s %d\n", fam.name, mergeLabels(suffix, le), cum[i])
				}
				fmt.Fprintf(&b, "%s_bucket%s %d\n", fam.name, mergeLabels(suffix, `le="+Inf"`), count)
				fmt.Fprintf(&b, "%s_sum%s %g\n", fam.name, suffix, sum)
				fmt.Fprintf(&b, "%s_count%s %d\n", fam.name, suffix, count)
			}
		}
	}
	return b.String()
}

// Handler serves the rendered metrics.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		w.Write([]byte(r.Render()))
	})
}

// Serve blocks serving /metrics on the given port. The root path answers
// with a bare "ok" for liveness probes.
func (r *Registry) Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

// ServeAsync runs Serve in a goroutine, reporting a failed listen on
// stderr rather than killing the process.
func (r *Registry) ServeAsync(port int) {
	go func() {
		if err := r.Serve(port); err != nil {
			fmt.Fprintf(os.Stderr, "metrics server on port %d: %v\n", port, err)
		}
	}()
}
