// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the built-in values used for every field no other source
// has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "dealer-admin",
		},
		Storage: Storage{
			Objects: Objects{
				Backend: ObjectsBackendFS,
				Dir:     "./data/objects",
				Bucket:  "inventory",
				Region:  "us-east-1",
				Timeout: 15 * time.Second,
			},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Feed: Feed{
			PageSize:      100,
			PageTimeout:   15 * time.Second,
			ProbeTimeout:  60 * time.Second,
			PhotoTimeout:  8 * time.Second,
			PhotoMaxBytes: 15 << 20,
		},
		Sync: Sync{
			Concurrency:        8,
			ErrorCap:           10,
			ResponseErrorLimit: 5,
			FinalizeTimeout:    10 * time.Second,
		},
	}
}
