package reactive

// callbackListener adapts a plain function to the Listener interface.
// This is the subscription surface the view tree binds to: no dependency
// tracking, just a notification callback and a cancel.
type callbackListener struct {
	id uint64
	fn func()
}

func (c *callbackListener) MarkDirty() { c.fn() }
func (c *callbackListener) ID() uint64 { return c.id }

// Subscribe registers fn to run whenever the signal's value changes and
// returns a cancel function. After cancel returns, fn never fires again.
//
// Together with Get, this satisfies vtree.TextSource for Signal[string].
func (s *Signal[T]) Subscribe(fn func()) (cancel func()) {
	l := &callbackListener{id: nextID(), fn: fn}
	s.base.subscribe(l)
	return func() {
		s.base.unsubscribe(l)
	}
}

// Subscribe registers fn to run whenever the memo's value is
// invalidated and returns a cancel function.
func (m *Memo[T]) Subscribe(fn func()) (cancel func()) {
	l := &callbackListener{id: nextID(), fn: fn}
	m.base.subscribe(l)
	return func() {
		m.base.unsubscribe(l)
	}
}

// Formatted adapts a non-string signal to a string source by running
// every value through a format function.
type Formatted[T any] struct {
	src    *Signal[T]
	format func(T) string
}

// StringOf creates a string view over a signal of any type.
// The result satisfies vtree.TextSource.
func StringOf[T any](src *Signal[T], format func(T) string) *Formatted[T] {
	return &Formatted[T]{src: src, format: format}
}

// Get returns the formatted current value.
func (f *Formatted[T]) Get() string {
	return f.format(f.src.Peek())
}

// Subscribe forwards to the underlying signal.
func (f *Formatted[T]) Subscribe(fn func()) (cancel func()) {
	return f.src.Subscribe(fn)
}
