// Package enummap provides read-only lookup tables from enumerator values to
// display strings.
//
// Two backings exist because enumerations differ in shape:
//
//   - Dense indexes an array by key. Use it for small, mostly contiguous key
//     ranges such as execution phases.
//   - Sparse binary-searches a key-sorted slice. Use it for large or gapped
//     key spaces such as error codes, where an array sized to the largest
//     key would be mostly empty.
//
// Tables are built once, usually into package-level variables with MustDense
// or MustSparse, and never mutated afterwards. Lookups are safe for
// concurrent use and never panic; a key without an entry yields "".
package enummap
