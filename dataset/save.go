package dataset

import (
	"fmt"

	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

// Write stores data at path through sp, one record per object. externIDs
// may be nil; otherwise it must be parallel to data.
func Write[T object.Numeric](sp space.Space[T], path string, data object.Vector, externIDs []string, opts ...Option) (err error) {
	if externIDs != nil && len(externIDs) != len(data) {
		return fmt.Errorf("dataset: %d extern ids for %d objects", len(externIDs), len(data))
	}
	o := newOptions(opts)
	log := o.logger.WithPath(path).WithSpace(sp.String())
	state, err := sp.OpenWriteFileHeader(data, path)
	if err != nil {
		log.Error("create failed", "error", err)
		return err
	}
	defer func() {
		if cerr := state.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataset: close %s: %w", path, cerr)
		}
		if err != nil {
			log.Error("save failed", "error", err)
		}
	}()
	for i, obj := range data {
		var externID string
		if externIDs != nil {
			externID = externIDs[i]
		}
		if err := sp.WriteNextObj(obj, externID, state); err != nil {
			return err
		}
	}
	log.Info("saved", "objects", state.Written())
	return nil
}
