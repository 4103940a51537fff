package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGeneration EventType = "generation"
	EventFixedPoint EventType = "fixed_point"
	EventReset      EventType = "reset"
	EventMap        EventType = "map"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Grammar   string    `json:"grammar,omitempty"`
}

// GenerationEvent is emitted after every rewrite pass, including the pass that finds a fixed point.
type GenerationEvent struct {
	EventBase
	Index    int `json:"index"`
	Length   int `json:"length"`
	Expanded int `json:"expanded"`
}

// MapEvent is emitted after a sequence has been interpreted into geometry.
type MapEvent struct {
	EventBase
	Dimension Dimension `json:"dimension"`
	Symbols   int       `json:"symbols"`
	Lines     int       `json:"lines"`
	Markers   int       `json:"markers"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGeneration func(context.Context, *GenerationEvent)
	OnFixedPoint func(context.Context, *GenerationEvent)
	OnReset      func(context.Context, *EventBase)
	OnMap        func(context.Context, *MapEvent)
}

// Merge returns hooks that call h first and then other, for every callback either defines.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnGeneration: chain(h.OnGeneration, other.OnGeneration),
		OnFixedPoint: chain(h.OnFixedPoint, other.OnFixedPoint),
		OnReset:      chain(h.OnReset, other.OnReset),
		OnMap:        chain(h.OnMap, other.OnMap),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
