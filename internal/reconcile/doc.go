// Package reconcile decides when the clipboard list must be redrawn.
//
// Reconcile is a pure comparison: an incoming list is rendered only when it
// differs, in order, from the reference. When it does, every incoming entry
// without an equal entry in the reference is marked new.
//
// Engine wraps that decision with the side effects. Poll results go through
// ApplyBaseline, which renders and then commits the baseline. Search results
// go through ApplySearch, which renders but never commits. Restore leaves
// search mode and redraws the baseline. The engine never calls the renderer
// when nothing changed, so open menus and selections in the view survive
// idle poll ticks.
package reconcile
