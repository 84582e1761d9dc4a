// Package keycell provides aliasing-control primitives for sharing and
// mutating cyclically-linked heap data through a single capability.
//
// A Brand ties an Owner to the set of cells it may access. Cells never
// expose their content directly; every read or write presents an Owner,
// and the access functions verify that the owner's brand matches the
// brand stamped on the cell at construction. Counted StrongRef/WeakRef
// handles give shared ownership with deterministic destruction, which the
// doubly-linked list in pkg/dlist relies on for its weak back-links.
//
// Four owner variants share one access surface:
//
//   - NewOwner: a fresh runtime brand per owner (the dynamic variant).
//   - NewStaticOwner[M]: at most one live owner per marker type M.
//   - WithOwner: an owner valid only inside a callback.
//   - FamilyOwner[M] / FamilyCell[M, T]: generated, structurally distinct
//     owner+cell pairs (see cmd/cellgen).
//
// Go has no borrow checker, so exclusivity that the original design
// enforces statically is uniformly downgraded to the dynamic variant's
// runtime identity check: every access verifies the brand, and callers
// must not hold two mutable views of one cell except through Write2,
// which rejects aliased arguments. See docs/ARCHITECTURE.md § Ownership
// Downgrade for the accepted trade-off.
package keycell
