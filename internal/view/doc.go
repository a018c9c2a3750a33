// Package view implements the retained view tree: the View contract,
// the type-erased Cell wrapper that gives interactive views shared
// mutable state and a focus flag, and the Registry that tracks cells in
// a focus ring with tag-based lookup.
//
// Ownership follows an arena model. The Screen owns every Cell through a
// generational arena; the Registry's ring and tag map hold only
// generation-checked handles. Resolving a handle after its cell was
// released yields absent, which every traversal treats as "skip and
// continue", never as an error.
package view
