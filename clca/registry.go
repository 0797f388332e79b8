package clca

import (
	"github.com/pkg/errors"
)

// ColorSource yields colors on demand. Every call to Next must return a value
// strictly greater than the previous one and greater than 1; 1 marks
// FrozenUnmatched neighbors in extended texts and is never issued.
type ColorSource interface {
	Next() uint64
}

// SequentialSource issues 2, 3, 4, …
type SequentialSource struct {
	next uint64
}

// NewSequentialSource returns a SequentialSource starting at 2.
func NewSequentialSource() *SequentialSource {
	return &SequentialSource{next: 2}
}

// Next implements ColorSource.
func (s *SequentialSource) Next() uint64 {
	c := s.next
	s.next++
	return c
}

// PrimeSource issues the primes 2, 3, 5, 7, … in order.
type PrimeSource struct {
	primes []uint64
}

// NewPrimeSource returns a PrimeSource starting at 2.
func NewPrimeSource() *PrimeSource {
	return &PrimeSource{}
}

// Next implements ColorSource. Trial division by the primes found so far.
func (p *PrimeSource) Next() uint64 {
	if len(p.primes) == 0 {
		p.primes = append(p.primes, 2)
		return 2
	}
	for c := p.primes[len(p.primes)-1] + 1; ; c++ {
		composite := false
		for _, q := range p.primes {
			if q*q > c {
				break
			}
			if c%q == 0 {
				composite = true
				break
			}
		}
		if !composite {
			p.primes = append(p.primes, c)
			return c
		}
	}
}

// Registry maps label texts to colors for the lifetime of one run.
// It is injective: every text gets its own color and no color is issued twice.
// Only the assigner writes to it, and only between extension passes.
type Registry struct {
	src    ColorSource
	colors map[string]uint64
	last   uint64
}

// NewRegistry returns an empty Registry drawing from src.
func NewRegistry(src ColorSource) *Registry {
	return &Registry{src: src, colors: make(map[string]uint64)}
}

// Issue draws a fresh color for text.
// Returns ErrColorReissue if text already has one and ErrColorOrder if the
// source broke its strictly-increasing contract.
func (r *Registry) Issue(text string) (uint64, error) {
	if c, ok := r.colors[text]; ok {
		return 0, errors.Wrapf(ErrColorReissue, "%q already #%d", text, c)
	}
	c := r.src.Next()
	if c <= r.last || c <= 1 {
		return 0, errors.Wrapf(ErrColorOrder, "got %d after %d", c, r.last)
	}
	r.last = c
	r.colors[text] = c
	return c, nil
}

// Color returns the color issued for text, if any.
func (r *Registry) Color(text string) (uint64, bool) {
	c, ok := r.colors[text]
	return c, ok
}

// Last returns the most recently issued color, or 0 before the first issue.
func (r *Registry) Last() uint64 {
	return r.last
}

// Len returns the number of issued colors.
func (r *Registry) Len() int {
	return len(r.colors)
}
