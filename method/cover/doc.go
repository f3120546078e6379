// Package cover provides an exact kNN method backed by a cover tree. Only
// metric spaces (l2, l1, linf) are accepted. The tree prunes with
// per-node subtree radii by default or with a geometric level bound when
// asked to.
package cover
