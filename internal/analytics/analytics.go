package analytics

// Event is a single append-only analytics entry.
type Event struct {
	ID        string         `json:"id"`
	Name      string         `json:"event"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"data,omitempty"`
}

// Recorder is a fire-and-forget event sink. Record never fails from the
// caller's point of view; handlers call it around the core computations and
// must behave identically whether or not recording succeeds.
type Recorder interface {
	Record(name string, payload map[string]any)
	Events() []Event
	Clear()
}

// NopRecorder discards everything. Useful in tests.
type NopRecorder struct{}

func (NopRecorder) Record(string, map[string]any) {}
func (NopRecorder) Events() []Event               { return []Event{} }
func (NopRecorder) Clear()                        {}
