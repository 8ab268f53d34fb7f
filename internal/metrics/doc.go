// Package metrics collects runtime memory snapshots and exposes the
// Prometheus instruments of limbcalc runs.
package metrics
