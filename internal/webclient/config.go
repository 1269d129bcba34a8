package webclient

import "time"

// Config holds transport settings for the net/http backend.
type Config struct {
	// Timeout bounds a whole request including reading the body. Zero means no
	// client-side timeout; the request then waits as long as the service does.
	Timeout time.Duration
}
