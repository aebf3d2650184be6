package controllers

import (
	"sync"

	"github.com/desertthunder/mixtape/internal/shared"
)

// subscriber pairs a subscription id with its callback. Subscribers are kept
// in registration order so delivery order is deterministic.
type subscriber[T any] struct {
	id string
	fn func(T)
}

// Publisher is an ordered observable state container.
//
// Publish runs every subscriber callback synchronously while holding the
// lock: no two publishes interleave, and each subscriber observes states in
// exactly the order they were published. Latest returns the last published
// state for pull-style consumers (the TUI reads state this way).
type Publisher[T any] struct {
	mu     sync.Mutex
	latest T
	subs   []subscriber[T]
}

// NewPublisher creates a Publisher whose latest state is the given initial value.
func NewPublisher[T any](initial T) *Publisher[T] {
	return &Publisher[T]{latest: initial}
}

// Subscribe registers a callback for every subsequent publish and returns a
// subscription id for [Publisher.Unsubscribe].
func (p *Publisher[T]) Subscribe(fn func(T)) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := shared.GenerateID()
	p.subs = append(p.subs, subscriber[T]{id: id, fn: fn})
	return id
}

// Unsubscribe removes the subscription with the given id. Unknown ids are a no-op.
func (p *Publisher[T]) Unsubscribe(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, sub := range p.subs {
		if sub.id == id {
			p.subs = append(p.subs[:i], p.subs[i+1:]...)
			return
		}
	}
}

// Publish records state as the latest value and delivers it to every
// subscriber in registration order.
func (p *Publisher[T]) Publish(state T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest = state
	for _, sub := range p.subs {
		sub.fn(state)
	}
}

// Latest returns the most recently published state.
func (p *Publisher[T]) Latest() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}
