// Package chain runs an ordered list of validation steps over a payload.
//
// Each step may reject the payload by returning an error, or hand a
// transformed payload to the next step. The first error aborts the run;
// steps that already ran are not undone.
package chain

import "context"

// Link is a single validation step.
type Link[T any] func(ctx context.Context, payload T) (T, error)

// Validator is implemented by anything that validates and transforms a payload.
type Validator[T any] interface {
	Validate(ctx context.Context, payload T) (T, error)
}

// Chain is an immutable, ordered list of links.
type Chain[T any] struct {
	links []Link[T]
}

// New builds a chain that runs links in the order given.
func New[T any](links ...Link[T]) *Chain[T] {
	return &Chain[T]{links: append([]Link[T](nil), links...)}
}

// Then returns a new chain with links appended after the existing ones.
func (c *Chain[T]) Then(links ...Link[T]) *Chain[T] {
	combined := make([]Link[T], 0, len(c.links)+len(links))
	combined = append(combined, c.links...)
	combined = append(combined, links...)
	return &Chain[T]{links: combined}
}

// Len returns the number of links.
func (c *Chain[T]) Len() int { return len(c.links) }

// Validate folds the payload through every link. On error the zero value
// of T is returned together with the error of the failing link.
func (c *Chain[T]) Validate(ctx context.Context, payload T) (T, error) {
	current := payload
	for _, link := range c.links {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		next, err := link(ctx, current)
		if err != nil {
			var zero T
			return zero, err
		}
		current = next
	}
	return current, nil
}
