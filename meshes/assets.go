package meshes

// Handle is the entity component referencing a mesh asset. A handle can
// exist before the mesh it names is resident on the GPU.
type Handle uint32

const NilHandle Handle = 0

// Assets stores meshes by handle. Get returns nil for handles whose mesh is
// not (yet) resident; render passes treat that as "skip this entity for the
// frame", never as an error.
type Assets struct {
	lastHandle Handle
	meshes     map[Handle]*Mesh
}

func NewAssets() *Assets {
	return &Assets{
		meshes: make(map[Handle]*Mesh),
	}
}

// Reserve allocates a handle whose mesh will become resident later.
func (a *Assets) Reserve() Handle {
	a.lastHandle++
	return a.lastHandle
}

// Insert makes a mesh resident under a previously reserved handle.
func (a *Assets) Insert(h Handle, m *Mesh) {
	if h == NilHandle || h > a.lastHandle {
		return
	}
	a.meshes[h] = m
}

// Add reserves a handle and makes the mesh resident under it.
func (a *Assets) Add(m *Mesh) Handle {
	h := a.Reserve()
	a.meshes[h] = m
	return h
}

// Get returns the mesh for the handle, or nil if it is not resident.
func (a *Assets) Get(h Handle) *Mesh {
	return a.meshes[h]
}
