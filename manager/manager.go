package manager

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
)

type Option func(*weather)

// WithLogger enables logging of every lookup outcome.
func WithLogger(logger *log.Logger) Option {
	return func(w *weather) {
		w.logger = logger
	}
}

func New(provider Weather, opts ...Option) *weather {
	w := &weather{
		provider: provider,
		logger:   log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

type weather struct {
	provider Weather
	logger   *log.Logger
}

// Get looks up the weather of a city. Every returned error is a *LookupError.
func (w *weather) Get(ctx context.Context, city string) (Result, error) {
	id := uuid.NewString()

	city = strings.TrimSpace(city)
	if city == "" {
		err := Classify(ErrEmptyCity)
		w.logger.Printf("lookup %s: %s", id, err)
		return Result{}, err
	}

	if w.provider == nil {
		err := Classify(fmt.Errorf("provider not set"))
		w.logger.Printf("lookup %s: %q: %s", id, city, err)
		return Result{}, err
	}

	result, err := w.provider.Get(ctx, city)
	if err != nil {
		lookupErr := Classify(err)
		if lookupErr.Err != nil {
			w.logger.Printf("lookup %s: %q: %s (%v)", id, city, lookupErr, lookupErr.Err)
		} else {
			w.logger.Printf("lookup %s: %q: %s", id, city, lookupErr)
		}
		return Result{}, lookupErr
	}

	result.Emoji = EmojiFor(result.Condition)
	w.logger.Printf("lookup %s: %q: %s", id, city, result.Condition)

	return result, nil
}
