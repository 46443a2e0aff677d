// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-objects-backend photo object store backend ("s3" or "fs")
//	-objects-dir directory of the "fs" object store
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-cron-secret unattended trigger secret
//	-credential-key master key of stored partner credentials
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval scheduler tick (e.g., "1m"); 0 disables the scheduler
//	-sync-concurrency vehicles reconciled in parallel
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var objectsBackend string
	var objectsDir string
	var jsonConfigPath string
	var tokenSignKey string
	var cronSecret string
	var credentialKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var syncConcurrency int

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&objectsBackend, "objects-backend", "", "Photo object store backend (s3|fs)")
	fs.StringVar(&objectsDir, "objects-dir", "", "Directory of the fs object store")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cronSecret, "cron-secret", "", "Unattended trigger secret")
	fs.StringVar(&credentialKey, "credential-key", "", "Master key of stored partner credentials")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Scheduler tick (e.g., 1m)")
	fs.IntVar(&syncConcurrency, "sync-concurrency", 0, "Vehicles reconciled in parallel")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			CronSecret:    cronSecret,
			CredentialKey: credentialKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Objects: Objects{
				Backend: objectsBackend,
				Dir:     objectsDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Concurrency: syncConcurrency,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "inventory-sync"
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
