package port

// Event is a typed payload published on the event bus.
type Event interface {
	EventName() string
}

// EventQuitRequested asks the application to quit.
type EventQuitRequested struct{}

// EventCloseWorkspace asks for the workspace with Index to be closed.
type EventCloseWorkspace struct {
	Index int
}

// EventNewWorkspace asks for a new workspace.
type EventNewWorkspace struct{}

// EventTitleChanged carries the new window title.
type EventTitleChanged struct {
	Title string
}

// EventLayoutChanged signals that the pane layout of workspace Index changed.
type EventLayoutChanged struct {
	Index int
}

func (EventQuitRequested) EventName() string  { return "quit" }
func (EventCloseWorkspace) EventName() string { return "close-workspace" }
func (EventNewWorkspace) EventName() string   { return "new-workspace" }
func (EventTitleChanged) EventName() string   { return "change-window-title" }
func (EventLayoutChanged) EventName() string  { return "layout-changed" }

// EventPublisher emits events to subscribers.
type EventPublisher interface {
	Publish(ev Event)
}

// EventSubscriber registers handlers for a named event.
// The returned function removes the handler.
type EventSubscriber interface {
	Subscribe(name string, fn func(Event)) (unsubscribe func())
}
