// Package catalog serves the pet adoption records: pets with their medical
// history, medical records, forum posts, lost-pet alerts and adoption
// requests.
//
// Reads are public. Writes go through the session guard passed to
// NewService, normally auth.RequireAuth, and answer 201 with the stored
// record. Lists are returned newest first.
package catalog
