package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/norman784/amethyst/assert"
	"github.com/norman784/amethyst/buffers"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

// Mesh is GPU-resident geometry in the flat interleaved layout:
//   - Loc0: Pos (Vec3)
//   - Loc1: Color (Vec4)
//
// Meshes without vertex colors get opaque white.
type Mesh struct {
	Name      string
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

// NewMesh imports a model file and uploads its geometry in the flat
// pos+color layout. Requires a current GL context.
func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	finalPostProcessFlags := DefaultMeshLoadFlags | postProcessFlags

	scene, release, err := asig.ImportFile(modelPath, finalPostProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	var vertexBufData []float32
	var indexBufData []uint32
	subMeshes := make([]SubMesh, 0, len(scene.Meshes))

	// 3 position + 4 color floats per vertex
	const floatsPerVertex = 7

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		colors := whiteColors(len(sceneMesh.Vertices))
		if len(sceneMesh.ColorSets) > 0 && len(sceneMesh.ColorSets[0]) > 0 {
			colors = sceneMesh.ColorSets[0]
		}

		indices := flattenFaces(sceneMesh.Faces)
		subMeshes = append(subMeshes, SubMesh{
			// Index of the vertex to start from (e.g. if index buffer says use vertex 5, and BaseVertex=3, the vertex used will be vertex 8)
			BaseVertex: int32(len(vertexBufData) / floatsPerVertex),
			// Which index (in the index buffer) to start from
			BaseIndex: uint32(len(indexBufData)),
			// How many indices in this submesh
			IndexCount: int32(len(indices)),
		})

		vertexBufData = append(vertexBufData, interleave(arrToInterleave{V3s: sceneMesh.Vertices}, arrToInterleave{V4s: colors})...)
		indexBufData = append(indexBufData, indices...)
	}

	mesh, err := uploadMesh(name, vertexBufData, indexBufData)
	if err != nil {
		return Mesh{}, err
	}

	mesh.SubMeshes = subMeshes
	return mesh, nil
}

// NewMeshFromData builds a mesh directly from positions, per-vertex colors
// and triangle indices. Colors may be nil, in which case every vertex is
// opaque white. Requires a current GL context.
func NewMeshFromData(name string, positions []gglm.Vec3, colors []gglm.Vec4, indices []uint32) (Mesh, error) {

	if len(positions) == 0 {
		return Mesh{}, errors.New("no vertices given for mesh: " + name)
	}

	if colors == nil {
		colors = whiteColors(len(positions))
	}

	if len(colors) != len(positions) {
		return Mesh{}, errors.New("vertex color count does not match position count for mesh: " + name)
	}

	vertexBufData := interleave(arrToInterleave{V3s: positions}, arrToInterleave{V4s: colors})

	mesh, err := uploadMesh(name, vertexBufData, indices)
	if err != nil {
		return Mesh{}, err
	}

	mesh.SubMeshes = []SubMesh{{BaseVertex: 0, BaseIndex: 0, IndexCount: int32(len(indices))}}
	return mesh, nil
}

func uploadMesh(name string, vertexBufData []float32, indexBufData []uint32) (Mesh, error) {

	mesh := Mesh{
		Name: name,
		Vao:  buffers.NewVertexArray(),
	}

	vbo := buffers.NewVertexBuffer(
		buffers.Element{ElementType: buffers.DataTypeVec3}, // Position
		buffers.Element{ElementType: buffers.DataTypeVec4}, // Color
	)
	vbo.SetData(vertexBufData, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(indexBufData)

	mesh.Vao.AddVertexBuffer(vbo)
	mesh.Vao.SetIndexBuffer(ibo)

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh, nil
}

func whiteColors(count int) []gglm.Vec4 {

	colors := make([]gglm.Vec4, count)
	for i := 0; i < count; i++ {
		colors[i] = gglm.NewVec4(1, 1, 1, 1)
	}
	return colors
}

type arrToInterleave struct {
	V3s []gglm.Vec3
	V4s []gglm.Vec4
}

func (a *arrToInterleave) len() int {
	if len(a.V3s) > 0 {
		return len(a.V3s)
	}
	return len(a.V4s)
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V3s) == 0 || len(a.V4s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V3s) > 0 {
		return a.V3s[i].Data[:]
	}
	return a.V4s[i].Data[:]
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()

	//Calculate final size of the float buffer
	totalSize := 0
	for i := 0; i < len(arrs); i++ {
		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length")
		totalSize += len(arrs[i].V3s)*3 + len(arrs[i].V4s)*4
	}

	out := make([]float32, 0, totalSize)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}

func flattenFaces(faces []asig.Face) []uint32 {

	assert.T(len(faces[0].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[0].Indices))

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		uints[i*3+0] = uint32(faces[i].Indices[0])
		uints[i*3+1] = uint32(faces[i].Indices[1])
		uints[i*3+2] = uint32(faces[i].Indices[2])
	}

	return uints
}
