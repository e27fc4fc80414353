package store

const (
	defaultEventBufferSize = 16
	defaultHistorySize     = 32
)

// Config sizes the store's event plumbing.
type Config struct {
	EventBufferSize int // default: 16
	HistorySize     int // default: 32
}

// NewConfig normalizes non-positive sizes to the defaults.
func NewConfig(eventBufferSize, historySize int) Config {
	if eventBufferSize <= 0 {
		eventBufferSize = defaultEventBufferSize
	}
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return Config{
		EventBufferSize: eventBufferSize,
		HistorySize:     historySize,
	}
}
