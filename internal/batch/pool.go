// Package batch splits many documents concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("batch: pool closed")

// Pool hands out splitters to concurrent workers. Every splitter owns its
// shape cache, so workers holding different splitters never contend on the
// same cache lock.
type Pool struct {
	splitters chan *sentsplit.Splitter
	size      int
	mu        sync.Mutex
	closed    bool
}

// NewPool creates a pool of size splitters built from opts.
func NewPool(size int, opts ...sentsplit.Option) (*Pool, error) {
	if size <= 0 {
		size = 1
	}

	pool := &Pool{
		splitters: make(chan *sentsplit.Splitter, size),
		size:      size,
	}

	for i := 0; i < size; i++ {
		s, err := sentsplit.New(opts...)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("creating splitter %d: %w", i, err)
		}
		pool.splitters <- s
	}

	return pool, nil
}

// Acquire gets a splitter from the pool, blocking if none available.
// Respects context cancellation. Returns error if pool is closed.
func (p *Pool) Acquire(ctx context.Context) (*sentsplit.Splitter, error) {
	select {
	case s, ok := <-p.splitters:
		if !ok {
			return nil, ErrPoolClosed
		}
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a splitter to the pool.
func (p *Pool) Release(s *sentsplit.Splitter) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	select {
	case p.splitters <- s:
	default:
	}
}

// Close drains the pool. Splitters still held by workers are dropped when
// released.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	close(p.splitters)
	for range p.splitters {
	}
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
