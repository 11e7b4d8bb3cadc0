package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract the query catalog needs from the underlying
// graph engine. Each Execute call is a single statement; there is no
// cross-statement transaction boundary.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is the fully-consumed response of a single statement.
type Result struct {
	Records []Record
}

// Record maps a declared return alias to a normalized value. Node and
// relationship values are flattened to their property maps before they reach
// the caller, so projectors never handle driver types.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")
