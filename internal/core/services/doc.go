// Package services holds kith's business rules behind the driving ports.
//
// CheckInService owns the lifecycle: scheduling, completing, rescheduling
// and the recurrence that follows a completion. The other services manage
// contacts, categories, settings and backups, and Scheduler turns due
// check-ins into reminders.
//
// Every service takes a domain.Clock so "now" is fixed in tests.
package services
