// Package reduce provides folds and order statistics over a buffer:
// sum, product, mean, median, extreme values and their positions.
//
// Extreme-value searches use strict comparisons against the running best,
// so the first element attaining the extreme is reported. Empty input is
// only valid for [Sum], [Product] and [MaxAbs]; the other reductions
// require at least one element.
package reduce
