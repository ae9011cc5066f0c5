// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CheckInStore: Check-in persistence
//   - ContactStore: Contact persistence
//   - CategoryStore: Category persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SchedulerStore: Background task state. Without it reminders cannot run.
//   - Notifier: Reminder delivery. Without it reminders are collected but not sent.
//
// Stores never persist a check-in's status. They keep the CheckInRecord and
// rebuild a domain.CheckIn on every read with their clock.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
