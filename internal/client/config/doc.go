// Package config loads runtime configuration for the LockSafe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Environment: LOCKSAFE_* variables, optionally from a .env file.
//  4. Command-line flags, which override earlier values.
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or a number of seconds:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	transport: grpc
//	online_check_interval: 3s
//	local_dsn: sqlite://locksafe.db
//	otp_validity: 2m
//	policy:
//	  min_length: 12
//	  require_special: true
package config
