package agaricus

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Option configures how a tree is grown.
type Option func(*builder)

type builder struct {
	variation        Variation
	rand             *rand.Rand
	sharedAttributes bool
	logger           *slog.Logger
}

/*
WithRand takes a source of random numbers for the roulette variation to
draw from. Without it, a source seeded with the current time is used.
*/
func WithRand(r *rand.Rand) Option {
	return func(b *builder) {
		if r != nil {
			b.rand = r
		}
	}
}

/*
WithSharedAttributes makes a single set of available attributes shared by
all nodes of the tree: once an attribute splits a node it is no longer
available anywhere else in the tree, including sibling subtrees developed
afterwards. By default an attribute is only unavailable under the node
that splits on it.
*/
func WithSharedAttributes() Option {
	return func(b *builder) {
		b.sharedAttributes = true
	}
}

// WithLogger takes a logger to receive a debug record for every node grown.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

func newBuilder(v Variation, opts []Option) *builder {
	b := &builder{variation: v}
	for _, opt := range opts {
		opt(b)
	}
	if b.rand == nil {
		b.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b
}
