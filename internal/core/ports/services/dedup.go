package services

import "context"

// DedupStore suppresses reprocessing of webhook deliveries retried by the
// provider. Implementations are best-effort: on store failure the pipeline
// degrades to at-least-once processing rather than rejecting the message.
type DedupStore interface {
	// FirstSeen records the provider message SID and reports whether this is
	// the first delivery carrying it.
	FirstSeen(ctx context.Context, providerSID string) (bool, error)
}
