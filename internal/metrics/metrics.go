// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus collectors of the sync engine. They
// are registered with the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SyncRunsTotal counts finished runs by trigger source and final status
	// (success, partial, failure).
	SyncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_sync_runs_total",
			Help: "Total number of inventory sync runs by trigger and status.",
		},
		[]string{"trigger", "status"},
	)

	// SyncRunDuration records the wall time of finished runs.
	SyncRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_sync_run_duration_seconds",
			Help:    "Duration of inventory sync runs.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		},
		[]string{"trigger"},
	)

	// SyncRecordsTotal counts reconciled records by outcome: created,
	// updated, unchanged, disabled, failed.
	SyncRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_sync_records_total",
			Help: "Total number of reconciled vehicle records by outcome.",
		},
		[]string{"outcome"},
	)

	// SyncPhotosTotal counts photo mirror outcomes: copied, skipped,
	// failed, cleaned_up.
	SyncPhotosTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_sync_photos_total",
			Help: "Total number of mirrored vehicle photos by outcome.",
		},
		[]string{"outcome"},
	)

	// SyncFailuresTotal counts fatal run failures by step.
	SyncFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_sync_failures_total",
			Help: "Total number of failed inventory sync runs by failing step.",
		},
		[]string{"step"},
	)

	// SyncInProgress is 1 while a live run of the process is executing.
	SyncInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_sync_in_progress",
			Help: "Number of inventory sync runs currently executing.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		SyncRunsTotal,
		SyncRunDuration,
		SyncRecordsTotal,
		SyncPhotosTotal,
		SyncFailuresTotal,
		SyncInProgress,
	)
}
