// Package plog logs Perhaps outcomes through zerolog without changing them.
package plog

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/perhaps/pkg/perhaps"
)

// Tap logs p with msg and returns p unchanged. Failure is logged at error
// level with the captured error, Empty and Present at debug level.
func Tap[T any](logger zerolog.Logger, msg string, p perhaps.Perhaps[T]) perhaps.Perhaps[T] {
	var event *zerolog.Event
	if p.IsFailure() {
		event = logger.Error().Err(p.Err())
	} else {
		event = logger.Debug()
	}

	event.Str("kind", p.Kind().String())
	if p.IsPresent() {
		event.Interface("value", p.Peek())
	}
	event.Msg(msg)

	return p
}

// Hook returns a callback for Perhaps.Inspect that logs every variant it
// sees with msg.
func Hook(logger zerolog.Logger, msg string) func(v perhaps.Variant) {
	return func(v perhaps.Variant) {
		logger.Debug().Object("perhaps", variant{v}).Msg(msg)
	}
}

// Object wraps p for zerolog's Event.Object.
func Object[T any](p perhaps.Perhaps[T]) zerolog.LogObjectMarshaler {
	return variant{p}
}

type variant struct {
	v perhaps.Variant
}

func (o variant) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", o.v.Kind().String())
	switch o.v.Kind() {
	case perhaps.KindPresent:
		e.Interface("value", o.v.Peek())
	case perhaps.KindFailure:
		e.AnErr("error", o.v.Err())
	}
}
