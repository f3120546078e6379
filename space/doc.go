// Package space defines the contract a vector space implements so that
// datasets can be loaded from and written to its native text format, and
// provides dense vector spaces over float32 and float64 elements.
//
// Reading a file is a small state machine driven by the caller:
//
//	st, err := sp.OpenReadFileHeader(path)
//	defer st.Close()
//	for {
//	    rec, ok, err := sp.ReadNextObjStr(st)
//	    if err != nil || !ok { ... }
//	    obj, err := sp.CreateObjFromStr(id, rec.Label, rec.Text, st)
//	}
//
// A state is bound to the space instance that opened it. Every record of
// a stream must have the dimensionality established by the first one.
package space
