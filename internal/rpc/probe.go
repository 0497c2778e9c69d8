package rpc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/log"
)

// ErrWrongChain is set on endpoints that answer for a different chain.
var ErrWrongChain = errors.New("RPC serves a different chain")

const probeTimeout = 5 * time.Second

// Probe asks every URL for its chain id in parallel and measures the round
// trip. When wantChainID is non-zero, endpoints reporting another id are
// marked unhealthy with ErrWrongChain. Results keep the order of urls.
func Probe(ctx context.Context, urls []string, wantChainID int64) []Endpoint {
	results := make([]Endpoint, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, u string) {
			defer wg.Done()
			results[idx] = probeOne(ctx, u, wantChainID)
		}(i, url)
	}

	wg.Wait()
	return results
}

func probeOne(ctx context.Context, url string, wantChainID int64) Endpoint {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	id, err := chain.NewEVMClient(url).ChainID(ctx)
	ep := Endpoint{URL: url, Latency: time.Since(start), ChainID: id, Err: err}
	if err == nil && wantChainID != 0 && id != wantChainID {
		ep.Err = fmt.Errorf("%w: got %d, want %d", ErrWrongChain, id, wantChainID)
	}
	log.L(ctx).WithField("rpc", url).WithField("latency", ep.Latency).WithError(ep.Err).Debug("probed RPC")
	return ep
}

// Best probes urls and returns the winner under algo. A single URL is
// returned without probing.
func Best(ctx context.Context, urls []string, wantChainID int64, algo Algorithm) (string, error) {
	switch len(urls) {
	case 0:
		return "", ErrNoHealthyRPC
	case 1:
		return urls[0], nil
	}
	winner, err := Pick(Probe(ctx, urls, wantChainID), algo)
	if err != nil {
		return "", err
	}
	return winner.URL, nil
}
