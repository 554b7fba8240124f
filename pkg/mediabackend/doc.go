// Package mediabackend implements the domain layer of a media/publishing
// backend: articles, ads, live-stream pointers, inquiry forms, and user
// accounts, with image assets stored in an object-storage bucket.
//
// The package is built around a Service interface configured through
// functional options:
//
//	svc, err := mediabackend.New(
//	    mediabackend.WithRepository(repo),
//	    mediabackend.WithObjectStore(store),
//	)
//
// Image uploads are validated, keyed, and written to the object store
// with bounded retry before the referencing record is ever persisted, so
// a record never points at a URL that was not durably written. Record
// types with cross-row invariants (the singleton about-info row, the
// at-most-one-active live stream) are maintained by the service under a
// per-type lock.
package mediabackend
