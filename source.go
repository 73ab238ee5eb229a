package fccee

// EventSource is a collection of simulated events for one sample.
type EventSource interface {
	// Entries is the total number of simulated events.
	Entries() int64
	// Loop calls fn for every event in order and stops at the first error.
	Loop(fn func(i int64, evt *Event) error) error
	Close() error
}

// Opener opens the event collection stored at path.
type Opener func(path string) (EventSource, error)

// Events is an in-memory EventSource.
type Events []Event

func (evts Events) Entries() int64 { return int64(len(evts)) }

func (evts Events) Loop(fn func(i int64, evt *Event) error) error {
	for i := range evts {
		if err := fn(int64(i), &evts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (evts Events) Close() error { return nil }
