package core

import (
	"strconv"
)

// Pagination is the normalized page/limit pair of list endpoints
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination normalizes raw query values, falling back to defaults on bad input
func ParsePagination(page, limit string) Pagination {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}

	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		l = DefaultPageLimit
	}
	if l > MaxPageLimit {
		l = MaxPageLimit
	}

	return Pagination{Page: p, Limit: l}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

func NewPage[T any](items []T, total int64, p Pagination) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit}
}

// Event is the realtime packet relayed to websocket clients
type Event struct {
	Type     string `json:"type"`
	Action   string `json:"action"`
	Resource any    `json:"resource,omitempty"`
}
