// Package frame provides tabular access over list values carrying the
// data-frame class mark.
//
// A data frame is a named list of equal-length columns with row names
// attached. Construction from columns validates the shape; construction
// from an existing value validates the class mark only, matching the
// host's own loose notion of frameness.
package frame
