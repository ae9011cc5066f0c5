// Package notify provides driven.Notifier implementations for check-in
// reminders.
//
// Adapters:
//   - Console: writes one line per reminder to an io.Writer
//   - RateLimited: token-bucket decorator around any Notifier
package notify
