package navgraph

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/navgraph/pkg/observability"
)

// ChangeListener is notified after every mutation of a graph it is
// registered with.
type ChangeListener interface {
	GraphChanged()
}

// ChangeListenerFunc adapts a plain function to [ChangeListener].
type ChangeListenerFunc func()

// GraphChanged calls f.
func (f ChangeListenerFunc) GraphChanged() { f() }

// ListenerID identifies one listener registration.
// The zero ListenerID never identifies a registration.
type ListenerID uuid.UUID

func (id ListenerID) String() string { return uuid.UUID(id).String() }

type registration struct {
	id       ListenerID
	listener ChangeListener
}

// AddChangeListener registers l and returns a handle for removing it.
// Registering the same listener twice yields two handles and two calls per
// change. A nil listener is ignored and the zero ListenerID returned.
func (g *Graph) AddChangeListener(l ChangeListener) ListenerID {
	if l == nil {
		return ListenerID{}
	}
	id := ListenerID(uuid.New())
	g.listeners = append(g.listeners, registration{id: id, listener: l})
	return id
}

// RemoveChangeListener removes the registration identified by id.
// It reports whether a registration was removed.
func (g *Graph) RemoveChangeListener(id ListenerID) bool {
	i := slices.IndexFunc(g.listeners, func(r registration) bool { return r.id == id })
	if i < 0 {
		return false
	}
	g.listeners = slices.Delete(g.listeners, i, i+1)
	return true
}

// ListenerCount returns the number of registered listeners.
func (g *Graph) ListenerCount() int { return len(g.listeners) }

// notifyOfChange calls every listener registered when the notification
// starts. Listeners may add or remove registrations while being called;
// such changes apply from the next notification on.
func (g *Graph) notifyOfChange() {
	snapshot := slices.Clone(g.listeners)
	observability.Graph().OnChange(g.name, len(snapshot))
	for _, r := range snapshot {
		g.dispatch(r)
	}
}

func (g *Graph) dispatch(r registration) {
	defer func() {
		if rec := recover(); rec != nil {
			g.logger.Warn("change listener panicked", "graph", g.name, "listener", r.id, "panic", rec)
		}
	}()
	r.listener.GraphChanged()
}
