package obs

import (
	"github.com/arbor-ui/arbor/pkg/backend"
)

// InstrumentBackend wraps a backend so every primitive call increments
// the backend_ops_total counter for its operation. Reads (FirstChild,
// NextSibling, Describe) are counted too; they dominate hydration cost.
func InstrumentBackend(inner backend.Backend, m *Metrics) backend.Backend {
	return &instrumentedBackend{inner: inner, m: m}
}

type instrumentedBackend struct {
	inner backend.Backend
	m     *Metrics
}

func (b *instrumentedBackend) CreateElement(tag string) backend.NodeRef {
	b.m.backendOps.WithLabelValues("create_element").Inc()
	return b.inner.CreateElement(tag)
}

func (b *instrumentedBackend) CreateText(text string) backend.NodeRef {
	b.m.backendOps.WithLabelValues("create_text").Inc()
	return b.inner.CreateText(text)
}

func (b *instrumentedBackend) SetText(node backend.NodeRef, text string) {
	b.m.backendOps.WithLabelValues("set_text").Inc()
	b.inner.SetText(node, text)
}

func (b *instrumentedBackend) SetAttribute(node backend.NodeRef, name, value string) {
	b.m.backendOps.WithLabelValues("set_attribute").Inc()
	b.inner.SetAttribute(node, name, value)
}

func (b *instrumentedBackend) RemoveAttribute(node backend.NodeRef, name string) {
	b.m.backendOps.WithLabelValues("remove_attribute").Inc()
	b.inner.RemoveAttribute(node, name)
}

func (b *instrumentedBackend) InsertBefore(parent, node, before backend.NodeRef) {
	b.m.backendOps.WithLabelValues("insert_before").Inc()
	b.inner.InsertBefore(parent, node, before)
}

func (b *instrumentedBackend) RemoveChild(parent, node backend.NodeRef) {
	b.m.backendOps.WithLabelValues("remove_child").Inc()
	b.inner.RemoveChild(parent, node)
}

func (b *instrumentedBackend) FirstChild(node backend.NodeRef) backend.NodeRef {
	b.m.backendOps.WithLabelValues("first_child").Inc()
	return b.inner.FirstChild(node)
}

func (b *instrumentedBackend) NextSibling(node backend.NodeRef) backend.NodeRef {
	b.m.backendOps.WithLabelValues("next_sibling").Inc()
	return b.inner.NextSibling(node)
}

func (b *instrumentedBackend) Describe(node backend.NodeRef) backend.NodeDesc {
	b.m.backendOps.WithLabelValues("describe").Inc()
	return b.inner.Describe(node)
}
