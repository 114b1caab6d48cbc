// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package paging slices sorted collections into fixed-size pages and keeps
// the current page valid as the collection changes.
package paging

import "github.com/danielhkuo/reach-board/followers"

// DefaultItemsPerPage is used when a non-positive page size is requested.
const DefaultItemsPerPage = 10

// Page is one slice of a collection plus the state needed to render controls.
type Page[T any] struct {
	Items       []T
	TotalPages  int
	CurrentPage int
}

// TotalPages returns ceil(length/perPage), and 0 for an empty collection.
func TotalPages(length, perPage int) int {
	perPage = normalizePerPage(perPage)
	if length <= 0 {
		return 0
	}
	return (length + perPage - 1) / perPage
}

// ClampPage moves current into [1, totalPages]. An empty collection
// (totalPages == 0) always reports page 1.
func ClampPage(current, totalPages int) int {
	if totalPages <= 0 || current < 1 {
		return 1
	}
	if current > totalPages {
		return totalPages
	}
	return current
}

// Paginate returns the records on currentPage, after clamping it to the
// pages that exist. Items is a fresh slice.
func Paginate[T any](records []T, currentPage, perPage int) Page[T] {
	perPage = normalizePerPage(perPage)
	total := TotalPages(len(records), perPage)
	current := ClampPage(currentPage, total)

	start := (current - 1) * perPage
	end := min(start+perPage, len(records))

	items := make([]T, 0, max(end-start, 0))
	if start < end {
		items = append(items, records[start:end]...)
	}

	return Page[T]{
		Items:       items,
		TotalPages:  total,
		CurrentPage: current,
	}
}

// State is the pagination selection a table keeps between renders.
type State struct {
	CurrentPage  int
	ItemsPerPage int
	Order        followers.Order
}

// NewState starts on page 1.
func NewState(itemsPerPage int, order followers.Order) State {
	return State{
		CurrentPage:  1,
		ItemsPerPage: normalizePerPage(itemsPerPage),
		Order:        order,
	}
}

// WithOrder switches sort order; a change returns to page 1.
func (s State) WithOrder(order followers.Order) State {
	if order != s.Order {
		s.Order = order
		s.CurrentPage = 1
	}
	return s
}

// WithItemsPerPage switches page size; a change returns to page 1.
func (s State) WithItemsPerPage(n int) State {
	n = normalizePerPage(n)
	if n != s.ItemsPerPage {
		s.ItemsPerPage = n
		s.CurrentPage = 1
	}
	return s
}

// WithPage selects a page. It is clamped on the next Reconcile.
func (s State) WithPage(page int) State {
	s.CurrentPage = page
	return s
}

// Reconcile recomputes the current page for a collection of the given length,
// e.g. after an item was deleted.
func (s State) Reconcile(length int) State {
	s.ItemsPerPage = normalizePerPage(s.ItemsPerPage)
	s.CurrentPage = ClampPage(s.CurrentPage, TotalPages(length, s.ItemsPerPage))
	return s
}

func normalizePerPage(n int) int {
	if n < 1 {
		return DefaultItemsPerPage
	}
	return n
}
