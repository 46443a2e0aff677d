// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the inventory sync
// service.
//
// It exposes the sync trigger, the run history API, Prometheus metrics and,
// for the filesystem photo backend, the mirrored photos under /media/.
// Request tracing, access logging, response compression and trigger
// authentication are handled here before requests reach the service layer.
package http
