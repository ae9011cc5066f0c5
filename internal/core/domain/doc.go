// Package domain defines the core business entities for kith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - CheckIn: A scheduled or completed touchpoint with a contact
//   - Contact: A person the user keeps in touch with
//   - Category: A grouping of contacts sharing a CheckInFrequency
//   - Snapshot: The export/import shape of all user data
//
// A CheckIn's Status is derived from its dates when the value is built.
// It is never persisted; stores keep a CheckInRecord and rebuild the
// entity on every read.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package
package domain
