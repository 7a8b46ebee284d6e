package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/patterns/core/events"
	coremetrics "github.com/kilianp07/patterns/core/metrics"
	"github.com/kilianp07/patterns/infra/logger"
)

// InfluxConfig holds the connection settings of an InfluxSink.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes selection and invocation events to InfluxDB using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSelection writes one "selection" point.
func (s *InfluxSink) RecordSelection(ev events.Selection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("selection").
		AddTag("selector", ev.Selector)
	addTagIfSet(p, "key", ev.Key)
	addTagIfSet(p, "variant", ev.Variant)
	p = p.AddTag("fallback", strconv.FormatBool(ev.Fallback)).
		AddField("rejected", ev.Err != nil).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordInvocation writes one "strategy_invocation" point.
func (s *InfluxSink) RecordInvocation(ev events.Invocation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("strategy_invocation")
	addTagIfSet(p, "strategy", ev.Strategy)
	p = p.AddTag("outcome", ev.Outcome()).
		AddField("a", ev.A).
		AddField("b", ev.B).
		AddField("defined", ev.Defined)
	if ev.Defined {
		p = p.AddField("value", ev.Value)
	}
	p = p.SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}

// Line protocol cannot carry empty tag values.
func addTagIfSet(p *write.Point, key, value string) {
	if value != "" {
		p.AddTag(key, value)
	}
}
