package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventRequestFailed EventType = "RequestFailed"
	EventLogoRequested EventType = "LogoRequested"
	EventLogoLoaded    EventType = "LogoLoaded"
	EventLogoFailed    EventType = "LogoFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL string
	Locale  string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// RequestFailedEvent is emitted when a backend call fails
type RequestFailedEvent struct {
	Op        string
	RequestID string
	Err       error
}

func (e RequestFailedEvent) Type() EventType { return EventRequestFailed }

// LogoRequestedEvent asks the logo loader to fetch an image
type LogoRequestedEvent struct {
	URL   string
	Width int // thumbnail width in cells
}

func (e LogoRequestedEvent) Type() EventType { return EventLogoRequested }

// LogoLoadedEvent carries a rendered thumbnail for an image URL
type LogoLoadedEvent struct {
	URL       string
	Thumbnail string
}

func (e LogoLoadedEvent) Type() EventType { return EventLogoLoaded }

// LogoFailedEvent is emitted when an image could not be fetched or decoded.
// It is only logged.
type LogoFailedEvent struct {
	URL string
	Err error
}

func (e LogoFailedEvent) Type() EventType { return EventLogoFailed }
