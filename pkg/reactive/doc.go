// Package reactive provides the signal graph Arbor's view trees bind to.
//
// Signal[T] is a reactive value container; Memo[T] a cached derivation;
// Effect a tracked side effect; Owner a disposal scope that releases
// everything a region created when the region is torn down. Reads inside
// a tracked context (memo computation, effect execution) automatically
// subscribe the current listener, so dependencies never need to be
// declared by hand.
//
// The view tree consumes only the thin subscription surface: Get plus
// Subscribe(fn) -> cancel, which Signal[string] (and StringOf adapters)
// expose as a vtree.TextSource. Resource[T] feeds an asynchronous data
// source into the graph, with cancellation tied to Owner disposal so a
// late completion never patches a torn-down region.
package reactive
