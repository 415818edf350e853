// Package config provides shared configuration utilities for the
// server binaries.
package config

import (
	"net"
	"os"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Addr joins a host and port into a dialable address. IPv6 hosts are
// bracketed.
func Addr(host, port string) string {
	return net.JoinHostPort(host, port)
}
