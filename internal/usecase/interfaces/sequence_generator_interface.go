package interfaces

import "context"

// ISequenceGenerator hands out strictly increasing numbers per name.
type ISequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}
