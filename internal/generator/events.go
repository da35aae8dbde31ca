package generator

// EventType defines the type of event
type EventType string

const (
	EventTopologyDeleted EventType = "topology_deleted"
	EventNetworkBuilt    EventType = "network_built"
	EventBatchPersisted  EventType = "batch_persisted"
)

// Event reports progress of a run
type Event struct {
	Type  EventType `json:"type"`
	Batch string    `json:"batch,omitempty"`
	Count int       `json:"count"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers without blocking
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// slow subscriber, drop
		}
	}
}
