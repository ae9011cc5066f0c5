package driven

// ConfigStore holds flat, dot-separated settings such as "reminders.enabled".
//
// The typed lookups report ok=false both for unset keys and for values of
// the wrong type, so callers can fall back to a default either way.
type ConfigStore interface {
	Lookup(key string) (any, bool)
	Int(key string) (int, bool)
	Bool(key string) (bool, bool)

	// Set stores value under key. Persistent stores write through before
	// returning and keep the previous value on failure.
	Set(key string, value any) error
}
