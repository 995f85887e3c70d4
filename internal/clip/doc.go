// Package clip defines clipboard history entries and the comparisons the
// reconciliation engine is built on.
//
// Two entries are equal when both Data and Kind match. Lists compare
// pairwise and in order, so the same entries in a different order are a
// different list. NewMarks flags entries absent from a reference list; it is
// what drives the "new" badge in the view.
//
// Image entries carry base64 encoded bytes in Data. Inspect and DecodeImage
// understand png, jpeg, gif, bmp, tiff and webp.
package clip
