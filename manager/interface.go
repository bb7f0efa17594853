package manager

import (
	"context"
)

type Weather interface {
	Get(ctx context.Context, city string) (Result, error)
}

// Result is the current weather for one city. Temperature is nil when the
// provider did not report it.
type Result struct {
	Temperature *float64
	Description string
	Condition   string
	Emoji       string
}
