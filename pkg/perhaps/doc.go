// Package perhaps provides Perhaps[T], a single type for the three outcomes
// of a computation: no value (Empty), a value (Present) and a captured
// failure (Failure).
//
// Values enter through the normalizer and flow through combinators that
// skip work on Empty and Failure:
// - Of/Normalize: classify a raw or already wrapped value
// - From/Try: run a computation, capturing errors and panics as Failure
// - Map/Then/MapEach: transform the whole value or each element
// - ForEach/ForOne/Each: side effects that keep the value unchanged
// - Catch/Recover/Or/OrFrom/OrElse: recover from Empty or Failure
// - Junction/All: join several values, first non-present one wins
// - Peek/Unwrap/UnwrapOr/UnwrapOrErr/Match: leave the algebra
//
// An error returned as the second result of a callback is a raised failure.
// An error returned as the value itself is ordinary data and stays Present.
package perhaps
