// Package metrics collects Prometheus metrics for scheduler commands and
// reservations, and optionally exposes them over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the CLI and the services report to.
type Recorder interface {
	RecordCommand(command, outcome string)
	RecordReservation(outcome string)
	RecordReserveLatency(d time.Duration)
}

type Collector struct {
	commands       *prometheus.CounterVec
	reservations   *prometheus.CounterVec
	reserveLatency prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_commands_total",
			Help: "CLI commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_reservations_total",
			Help: "Reservation attempts, by outcome.",
		}, []string{"outcome"}),
		reserveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_reserve_duration_seconds",
			Help:    "Duration of the reserve transaction.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.commands, c.reservations, c.reserveLatency)
	return c
}

func (c *Collector) RecordCommand(command, outcome string) {
	c.commands.WithLabelValues(command, outcome).Inc()
}

func (c *Collector) RecordReservation(outcome string) {
	c.reservations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordReserveLatency(d time.Duration) {
	c.reserveLatency.Observe(d.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordCommand(string, string)       {}
func (Nop) RecordReservation(string)           {}
func (Nop) RecordReserveLatency(time.Duration) {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
