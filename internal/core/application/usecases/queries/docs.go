// Package queries contains the read-side use cases of the admin panel.
//
// Handlers read straight from the database with hand-written SQL and return
// flat response structs shaped for the views. They never go through the
// aggregates and never open a unit of work.
package queries
