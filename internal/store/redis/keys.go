package redis

const (
	// KeyCollection holds the whole catalog as one JSON-encoded array.
	// The collection is always replaced wholesale, never patched.
	KeyCollection = "somi:domains"

	// ChannelEvents carries replace notifications between instances
	// sharing the same store. The payload is the publisher's origin id.
	ChannelEvents = "somi:domains:events"
)
