package rpc

import (
	"errors"
	"time"
)

// ErrNoHealthyRPC is returned when no healthy RPC endpoint is available.
var ErrNoHealthyRPC = errors.New("no healthy RPC endpoint available")

// Algorithm defines how an RPC endpoint is selected.
type Algorithm string

const (
	AlgorithmFastest  Algorithm = "fastest"
	AlgorithmFailover Algorithm = "failover"
)

// Endpoint is one probed RPC endpoint.
type Endpoint struct {
	URL     string
	Latency time.Duration
	ChainID int64
	Err     error
}

// Healthy reports whether the probe succeeded.
func (e Endpoint) Healthy() bool { return e.Err == nil }

// Pick selects an endpoint according to algo. Fastest takes the healthy
// endpoint with the lowest latency; failover takes the first healthy one in
// the order given.
func Pick(endpoints []Endpoint, algo Algorithm) (*Endpoint, error) {
	var winner *Endpoint
	for i := range endpoints {
		e := &endpoints[i]
		if !e.Healthy() {
			continue
		}
		if algo == AlgorithmFailover {
			return e, nil
		}
		if winner == nil || e.Latency < winner.Latency {
			winner = e
		}
	}
	if winner == nil {
		return nil, ErrNoHealthyRPC
	}
	return winner, nil
}
