// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the inventory
// sync service. It is populated by merging environment variables,
// command-line flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds secrets and identity settings used by the trigger
	// authenticator and the credential decrypter.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and object storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the inbound transports.
	Server Server `envPrefix:"SERVER_"`

	// Feed holds partner feed client and photo download limits.
	Feed Feed `envPrefix:"FEED_"`

	// Sync holds reconciliation engine tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration of the in-process scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level secrets.
type App struct {
	// TokenSignKey verifies HS256 session tokens of interactive triggers.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// CronSecret is the pre-shared value of the X-Cron-Secret header.
	// An empty secret disables the unattended trigger path.
	// Env: APP_CRON_SECRET
	CronSecret string `env:"CRON_SECRET"`

	// CronDealerID pins the dealer used by unattended runs. When empty the
	// first enabled dealer config is used.
	// Env: APP_CRON_DEALER_ID
	CronDealerID string `env:"CRON_DEALER_ID"`

	// CredentialKey is the master secret the stored partner API keys are
	// encrypted with.
	// Env: APP_CREDENTIAL_KEY
	CredentialKey string `env:"CREDENTIAL_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed in logs at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of all persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the photo object storage settings.
	Objects Objects `envPrefix:"OBJECTS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("sqlite://path/to/file.db" or "file:...").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Object storage backends.
const (
	ObjectsBackendS3 = "s3"
	ObjectsBackendFS = "fs"
)

// Objects holds settings for the mirrored photo store.
type Objects struct {
	// Backend is either "s3" (MinIO / any S3-compatible service) or "fs".
	// Env: STORAGE_OBJECTS_BACKEND
	Backend string `env:"BACKEND"`

	// Endpoint is the S3 endpoint host[:port].
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey are the static S3 credentials.
	// Env: STORAGE_OBJECTS_ACCESS_KEY_ID, STORAGE_OBJECTS_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// UseSSL enables TLS to the S3 endpoint.
	// Env: STORAGE_OBJECTS_USE_SSL
	UseSSL bool `env:"USE_SSL"`

	// Bucket is the S3 bucket photos are mirrored into.
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the S3 region.
	// Env: STORAGE_OBJECTS_REGION
	Region string `env:"REGION"`

	// Dir is the root directory of the "fs" backend.
	// Env: STORAGE_OBJECTS_DIR
	Dir string `env:"DIR"`

	// PublicBaseURL prefixes object names to build the public photo URLs
	// (e.g. "https://cdn.example.com/inventory").
	// Env: STORAGE_OBJECTS_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Timeout bounds every single object store call (exists, upload, list,
	// delete).
	// Env: STORAGE_OBJECTS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds read/write of a single inbound request. Sync
	// requests run for as long as the run takes.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Feed holds partner feed client settings.
type Feed struct {
	// PageSize is the default number of vehicles per page; a dealer config
	// may override it.
	// Env: FEED_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// PageTimeout bounds every page request of a live run.
	// Env: FEED_PAGE_TIMEOUT
	PageTimeout time.Duration `env:"PAGE_TIMEOUT"`

	// ProbeTimeout bounds the single request of a test-only run.
	// Env: FEED_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// PhotoTimeout bounds every photo download.
	// Env: FEED_PHOTO_TIMEOUT
	PhotoTimeout time.Duration `env:"PHOTO_TIMEOUT"`

	// PhotoMaxBytes caps the size of a single downloaded photo.
	// Env: FEED_PHOTO_MAX_BYTES
	PhotoMaxBytes int64 `env:"PHOTO_MAX_BYTES"`
}

// Sync holds reconciliation engine tuning.
type Sync struct {
	// Concurrency is the number of vehicles reconciled in parallel.
	// Env: SYNC_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// ErrorCap is the number of per-record errors persisted per run.
	// Env: SYNC_ERROR_CAP
	ErrorCap int `env:"ERROR_CAP"`

	// ResponseErrorLimit is the number of errors echoed in the response.
	// Env: SYNC_RESPONSE_ERROR_LIMIT
	ResponseErrorLimit int `env:"RESPONSE_ERROR_LIMIT"`

	// MaxDisablePercent refuses a disable pass that would retire more than
	// this share of the active inventory. 0 or 100 turns the guard off.
	// Env: SYNC_MAX_DISABLE_PERCENT
	MaxDisablePercent int `env:"MAX_DISABLE_PERCENT"`

	// FinalizeTimeout bounds the write that closes a run, which runs on a
	// context detached from the request.
	// Env: SYNC_FINALIZE_TIMEOUT
	FinalizeTimeout time.Duration `env:"FINALIZE_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the tick of the in-process scheduler. Zero disables it.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are merged with [mergo.Merge], so a field set by an
// earlier source is kept:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
