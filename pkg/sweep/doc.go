// Package sweep finds the positions of a bounded square domain that no
// sensor covers.
//
// Every sensor covers the diamond of points within manhattan distance
// Reach of its center. The domain x, y ∈ [0, maxSize] is swept row by row:
// each row starts as the full interval [0, maxSize] and every sensor
// reaching it erases its horizontal projection. Whatever is left in a row
// once no sensor can touch it any more is uncovered.
//
// Memory:
//
//   - A sensor is applied to all rows it reaches when the sweep arrives at
//     its center row. A row y is therefore final once row y+R has been
//     processed, R being the largest reach, and it is released at the top
//     of row y+R+1.
//   - At most 2R+1 rows are held at any time, independent of maxSize.
//
// Errors:
//
//   - ErrInvalidInput: negative maxSize or a sensor with negative reach.
package sweep
