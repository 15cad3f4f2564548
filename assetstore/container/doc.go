// Package container provides the ordered containers the asset store is built
// from: an insertion-ordered List, a capacity-bounded BoundedStack with key
// based de-duplication, and a FIFO Queue.
//
// The containers are backed by slices and are not safe for concurrent use;
// callers serialize access (the asset store does so with its lock manager).
// Every operation is total: removals that match nothing are no-ops, and
// reads from an empty container report absence through a boolean.
package container
