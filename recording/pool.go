package recording

import "github.com/gogpu/seamark"

// ResourcePool stores paths referenced by recording commands.
// Each AddPath clones the path so a Recording never aliases caller data.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	paths []*seamark.Path
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*seamark.Path, 0, 64),
	}
}

// AddPath adds a path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *seamark.Path) PathRef {
	if path == nil {
		// Add nil as-is to preserve the reference
		p.paths = append(p.paths, nil)
		// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
		return PathRef(uint32(len(p.paths) - 1))
	}
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *seamark.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}
