package converter

import "context"

//go:generate mockgen -typed -package=converter -destination=./mocks.go -source=./interface.go

// Sink persists decoded bytes and returns the location they were written to.
type Sink interface {
	WriteFile(ctx context.Context, path string, data []byte) (string, error)
}
