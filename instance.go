package bt

// Instance is a live, hardware-backed registration handle. Concrete
// instances (scanners, advertisers) are delivered through registration
// callbacks; the receiver owns the instance and must Close it when done.
type Instance interface {
	// InstanceID returns the hardware-assigned id for this registration.
	// It never changes over the lifetime of the instance.
	InstanceID() int

	// AppIdentifier returns the UUID the application registered under.
	AppIdentifier() UUID

	// Close releases the hardware registration. Best effort; safe to call
	// exactly once.
	Close() error
}

// Adapter answers whether the local Bluetooth adapter is powered and ready.
// Scan start-up consults it before touching the radio.
type Adapter interface {
	IsEnabled() bool
}
