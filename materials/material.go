package materials

// TextureSlot is the texture unit a texture binds to during a draw
type TextureSlot uint32

const (
	TextureSlot_Albedo   TextureSlot = 0
	TextureSlot_Emission TextureSlot = 1
)

var (
	lastMatId uint32
)

// Material is an entity component holding the texture set used to shade its
// mesh. A zero texture id means "unset": the binder substitutes the
// engine-wide default for that slot. Shader programs are owned by passes,
// not materials.
type Material struct {
	Id   uint32
	Name string

	AlbedoTex   uint32
	EmissionTex uint32
}

// Defaults is the engine-wide default texture set, used for every slot a
// material leaves unset and for entities drawn with no material at all.
type Defaults struct {
	AlbedoTex   uint32
	EmissionTex uint32
}

// ResolveAlbedo returns the material's albedo texture, falling back to the
// default. A nil material resolves every slot to the defaults.
func ResolveAlbedo(m *Material, defaults *Defaults) uint32 {

	if m == nil || m.AlbedoTex == 0 {
		return defaults.AlbedoTex
	}
	return m.AlbedoTex
}

func ResolveEmission(m *Material, defaults *Defaults) uint32 {

	if m == nil || m.EmissionTex == 0 {
		return defaults.EmissionTex
	}
	return m.EmissionTex
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func NewMaterial(matName string) Material {

	return Material{
		Id:   getNewMatId(),
		Name: matName,
	}
}
