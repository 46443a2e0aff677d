// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string `json:"token_sign_key"`
		TokenIssuer   string `json:"token_issuer"`
		CronSecret    string `json:"cron_secret"`
		CronDealerID  string `json:"cron_dealer_id"`
		CredentialKey string `json:"credential_key"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Backend         string   `json:"backend"`
			Endpoint        string   `json:"endpoint"`
			AccessKeyID     string   `json:"access_key_id"`
			SecretAccessKey string   `json:"secret_access_key"`
			UseSSL          bool     `json:"use_ssl"`
			Bucket          string   `json:"bucket"`
			Region          string   `json:"region"`
			Dir             string   `json:"dir"`
			PublicBaseURL   string   `json:"public_base_url"`
			Timeout         Duration `json:"timeout"`
		} `json:"objects,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Feed struct {
		PageSize      int      `json:"page_size"`
		PageTimeout   Duration `json:"page_timeout"`
		ProbeTimeout  Duration `json:"probe_timeout"`
		PhotoTimeout  Duration `json:"photo_timeout"`
		PhotoMaxBytes int64    `json:"photo_max_bytes"`
	} `json:"feed,omitempty"`

	Sync struct {
		Concurrency        int      `json:"concurrency"`
		ErrorCap           int      `json:"error_cap"`
		ResponseErrorLimit int      `json:"response_error_limit"`
		MaxDisablePercent  int      `json:"max_disable_percent"`
		FinalizeTimeout    Duration `json:"finalize_timeout"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	objects := jsonCfg.Storage.Objects
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			CronSecret:    jsonCfg.App.CronSecret,
			CronDealerID:  jsonCfg.App.CronDealerID,
			CredentialKey: jsonCfg.App.CredentialKey,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Objects: Objects{
				Backend:         objects.Backend,
				Endpoint:        objects.Endpoint,
				AccessKeyID:     objects.AccessKeyID,
				SecretAccessKey: objects.SecretAccessKey,
				UseSSL:          objects.UseSSL,
				Bucket:          objects.Bucket,
				Region:          objects.Region,
				Dir:             objects.Dir,
				PublicBaseURL:   objects.PublicBaseURL,
				Timeout:         time.Duration(objects.Timeout),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Feed: Feed{
			PageSize:      jsonCfg.Feed.PageSize,
			PageTimeout:   time.Duration(jsonCfg.Feed.PageTimeout),
			ProbeTimeout:  time.Duration(jsonCfg.Feed.ProbeTimeout),
			PhotoTimeout:  time.Duration(jsonCfg.Feed.PhotoTimeout),
			PhotoMaxBytes: jsonCfg.Feed.PhotoMaxBytes,
		},
		Sync: Sync{
			Concurrency:        jsonCfg.Sync.Concurrency,
			ErrorCap:           jsonCfg.Sync.ErrorCap,
			ResponseErrorLimit: jsonCfg.Sync.ResponseErrorLimit,
			MaxDisablePercent:  jsonCfg.Sync.MaxDisablePercent,
			FinalizeTimeout:    time.Duration(jsonCfg.Sync.FinalizeTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
