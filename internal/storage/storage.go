// Package storage holds raw key-value backends for the record store. Values
// are opaque bytes; the repository layer decides what they mean.
package storage

import (
	"context"
	"fmt"
	"strings"
)

type Store interface {
	// Get returns ok=false when the key has never been set.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

const (
	KeyAgents      = "vc_agents"
	KeyInvestors   = "investors"
	KeyInvestments = "investments"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
