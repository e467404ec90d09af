// Package bfs provides breadth-first search over a core.View,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tabula/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   core.View[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// the context error on cancellation, or any OnVisit error.
func BFS[V comparable](g core.View[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start vertex
	vertices := g.Vertices()
	found := false
	for _, v := range vertices {
		if v == start {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := len(vertices)
	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d and adds it to the queue.
func (w *walker[V]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbour with its parent link.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	for _, nbr := range w.graph.NeighboursOf(item.v) {
		// first time seen?
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, nextDepth)
		}
	}
}
