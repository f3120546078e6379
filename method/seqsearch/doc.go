// Package seqsearch provides an exhaustive kNN method: every query is
// scored against every object with the space distance. It supports a
// compact binary format for persistence in the index_storage table.
package seqsearch
