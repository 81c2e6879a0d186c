// Package array provides typed multidimensional views over flat vector
// storage.
//
// A view pairs a dynamic vector with a dimension attribute and exposes
// index-based access in column-major order: the first extent varies
// fastest, so element (i0, i1, i2) lives at flat offset
// i0 + d0*(i1 + d1*i2). Views over one, two and three extents are
// provided as Column, Matrix and Matrix3D.
//
// Element access is borrowed, not copied: writes through a mutable view
// are visible to every holder of the underlying value. Out-of-range
// indices are programming errors and panic rather than return an error.
package array
