package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys used on the instruments below.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("board.operation")
	AttrStatus      = attribute.Key("board.status")
)

// Metrics are the instruments shared across the service.
type Metrics struct {
	// Inbound requests, recorded by the HTTP middleware.
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// Webhook deliveries, recorded by httpclient.
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// BoardMutations counts add and move calls by board.operation and
	// result (created, moved, noop, invalid).
	BoardMutations metric.Int64Counter

	// BoardProjects is the number of projects in each board.status column.
	BoardProjects metric.Int64Gauge
}

// NewMetrics registers every instrument on mp under the given scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of outgoing HTTP requests", "s"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Outgoing HTTP requests", "{request}"),
		BoardMutations:        r.counter("board.mutations", "Board add/move calls by operation and result", "{call}"),
		BoardProjects:         r.gauge("board.projects", "Projects on the board per status", "{project}"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// registrar collects instrument creation errors so NewMetrics can report
// them together.
type registrar struct {
	meter metric.Meter
	errs  []error
}

func (r *registrar) fail(name string, err error) {
	r.errs = append(r.errs, fmt.Errorf("creating %s: %w", name, err))
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return c
}

func (r *registrar) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return h
}

func (r *registrar) gauge(name, desc, unit string) metric.Int64Gauge {
	g, err := r.meter.Int64Gauge(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return g
}
