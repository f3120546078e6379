// Package method selects and constructs search indexes at runtime.
// Constructors register under an element type and a method name; callers
// create an index from a space, a dataset and a parameter set without
// depending on concrete index types. Built-in methods live in
// subpackages and register with Default from init:
//   - dummy: retains the dataset, optional sequential search
//   - seqsearch: exhaustive kNN with binary persistence
//   - cover: cover tree kNN
package method
