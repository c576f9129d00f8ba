package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/arty/pkg/core"
)

type collectionSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits directory change events.
// It bridges the typed watcher channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &collectionSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *collectionSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until the watcher channel closes or ctx is done.
// The output channel is closed when forwarding stops.
func (s *collectionSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
