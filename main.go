package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/norman784/amethyst/assets"
	"github.com/norman784/amethyst/camera"
	"github.com/norman784/amethyst/config"
	"github.com/norman784/amethyst/ecs"
	"github.com/norman784/amethyst/engine"
	"github.com/norman784/amethyst/hidden"
	"github.com/norman784/amethyst/input"
	"github.com/norman784/amethyst/logging"
	"github.com/norman784/amethyst/materials"
	"github.com/norman784/amethyst/meshes"
	"github.com/norman784/amethyst/pass"
	"github.com/norman784/amethyst/pipeline"
	"github.com/norman784/amethyst/renderer"
	"github.com/norman784/amethyst/renderer/rend3dgl"
	"github.com/norman784/amethyst/transform"
	"github.com/norman784/amethyst/visibility"
	"github.com/veandco/go-sdl2/sdl"
)

type Game struct {
	WinWidth  int32
	WinHeight int32
	Win       *engine.Window
	Rend      *rend3dgl.Rend3DGL
	Cfg       config.Config

	World      *ecs.World
	MeshAssets *meshes.Assets
	Defaults   materials.Defaults

	Cameras    *ecs.Storage[camera.Camera]
	Meshes     *ecs.Storage[meshes.Handle]
	Materials  *ecs.Storage[materials.Material]
	Globals    *ecs.Storage[transform.GlobalTransform]
	Rgbas      *ecs.Storage[renderer.Rgba]
	Hidden     *ecs.Storage[hidden.Hidden]
	HiddenProp *ecs.Storage[hidden.HiddenPropagate]

	ActiveCam camera.Active

	OpaquePass        *pass.DrawFlatColored
	OpaqueEffect      *pipeline.Effect
	TransparentPass   *pass.DrawFlatColored
	TransparentEffect *pipeline.Effect

	// Toggled at runtime to exercise the culled submission path
	UseVisibility bool
}

func main() {

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	cfg, err := config.Load("./config.yaml")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	engine.SetMSAA(cfg.Window.Msaa)
	engine.SetVSync(cfg.Window.Vsync)

	cc := cfg.Renderer.ClearColor
	engine.SetClearColor(cc[0], cc[1], cc[2], cc[3])

	game := &Game{
		Win:       window,
		WinWidth:  cfg.Window.Width,
		WinHeight: cfg.Window.Height,
		Rend:      rend,
		Cfg:       cfg,
	}

	engine.Run(game, window, rend)
}

func (g *Game) Init() {

	assets.InitDefaults()
	g.Defaults = assets.DefaultMaterials()

	g.World = ecs.NewWorld()
	g.MeshAssets = meshes.NewAssets()

	g.Cameras = ecs.NewStorage[camera.Camera]()
	g.Meshes = ecs.NewStorage[meshes.Handle]()
	g.Materials = ecs.NewStorage[materials.Material]()
	g.Globals = ecs.NewStorage[transform.GlobalTransform]()
	g.Rgbas = ecs.NewStorage[renderer.Rgba]()
	g.Hidden = ecs.NewStorage[hidden.Hidden]()
	g.HiddenProp = ecs.NewStorage[hidden.HiddenPropagate]()

	// Camera entity
	camEntity := g.World.NewEntity()
	g.Cameras.Set(camEntity, camera.NewPerspective(45*gglm.Deg2Rad, float32(g.WinWidth)/float32(g.WinHeight), 0.1, 200))

	camWorld := gglm.NewTranslationMat(0, 1, 8)
	g.Globals.Set(camEntity, transform.FromTrMat(&camWorld))
	g.ActiveCam = camera.Active{Entity: camEntity}

	// Meshes
	triMesh, err := meshes.NewMeshFromData(
		"Triangle",
		[]gglm.Vec3{
			gglm.NewVec3(-1, -1, 0),
			gglm.NewVec3(1, -1, 0),
			gglm.NewVec3(0, 1, 0),
		},
		[]gglm.Vec4{
			gglm.NewVec4(1, 0, 0, 1),
			gglm.NewVec4(0, 1, 0, 1),
			gglm.NewVec4(0, 0, 1, 1),
		},
		[]uint32{0, 1, 2},
	)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create mesh. Err:", err)
	}

	quadMesh, err := meshes.NewMeshFromData(
		"Quad",
		[]gglm.Vec3{
			gglm.NewVec3(-1, -1, 0),
			gglm.NewVec3(1, -1, 0),
			gglm.NewVec3(1, 1, 0),
			gglm.NewVec3(-1, 1, 0),
		},
		nil,
		[]uint32{0, 1, 2, 0, 2, 3},
	)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create mesh. Err:", err)
	}

	triHandle := g.MeshAssets.Add(&triMesh)
	quadHandle := g.MeshAssets.Add(&quadMesh)

	flatMat := materials.NewMaterial("Flat mat")

	// Opaque triangle
	tri := g.World.NewEntity()
	triWorld := gglm.NewTranslationMat(-2, 0, 0)
	g.Meshes.Set(tri, triHandle)
	g.Materials.Set(tri, flatMat)
	g.Globals.Set(tri, transform.FromTrMat(&triWorld))

	// Tinted quad
	quad := g.World.NewEntity()
	quadWorld := gglm.NewTranslationMat(2, 0, 0)
	g.Meshes.Set(quad, quadHandle)
	g.Materials.Set(quad, flatMat)
	g.Globals.Set(quad, transform.FromTrMat(&quadWorld))
	g.Rgbas.Set(quad, renderer.Rgba{R: 1, G: 0.5, B: 0.2, A: 1})

	// Hidden quad, never drawn
	hiddenQuad := g.World.NewEntity()
	hiddenWorld := gglm.NewTranslationMat(0, 2, 0)
	g.Meshes.Set(hiddenQuad, quadHandle)
	g.Materials.Set(hiddenQuad, flatMat)
	g.Globals.Set(hiddenQuad, transform.FromTrMat(&hiddenWorld))
	g.Hidden.Set(hiddenQuad, hidden.Hidden{})

	// Translucent quad drawn by the transparent pass
	glassQuad := g.World.NewEntity()
	glassWorld := gglm.NewTranslationMat(0, 0, 2)
	g.Meshes.Set(glassQuad, quadHandle)
	g.Materials.Set(glassQuad, flatMat)
	g.Globals.Set(glassQuad, transform.FromTrMat(&glassWorld))
	g.Rgbas.Set(glassQuad, renderer.Rgba{R: 0.4, G: 0.6, B: 1, A: 0.5})

	// Passes
	g.OpaquePass = pass.NewDrawFlatColored(pass.PosColorLayout())

	g.OpaqueEffect, err = g.OpaquePass.Compile(&pipeline.NewEffect{Factory: g.Rend})
	if err != nil {
		logging.ErrLog.Fatalln("Failed to compile opaque pass. Err:", err)
	}

	depthTest := pipeline.DepthMode_LessEqualTest
	g.TransparentPass = pass.NewDrawFlatColored(pass.PosColorLayout()).
		WithTransparency(pipeline.ColorMask_All, pipeline.AlphaBlend, &depthTest)

	g.TransparentEffect, err = g.TransparentPass.Compile(&pipeline.NewEffect{Factory: g.Rend})
	if err != nil {
		logging.ErrLog.Fatalln("Failed to compile transparent pass. Err:", err)
	}
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_v) {
		g.UseVisibility = !g.UseVisibility
	}
}

func (g *Game) Render() {

	var vis *visibility.Visibility
	if g.UseVisibility {
		vis = g.buildVisibility()
	}

	data := &pass.Data{
		Active:     g.ActiveCam,
		Cameras:    g.Cameras,
		MeshAssets: g.MeshAssets,
		Defaults:   g.Defaults,
		Visibility: vis,
		Hidden:     g.Hidden,
		HiddenProp: g.HiddenProp,
		Meshes:     g.Meshes,
		Materials:  g.Materials,
		Globals:    g.Globals,
		Rgbas:      g.Rgbas,
	}

	g.OpaquePass.Apply(g.Rend, g.OpaqueEffect, data)
	g.TransparentPass.Apply(g.Rend, g.TransparentEffect, data)
}

// buildVisibility marks every non-hidden opaque entity as unordered visible
// and puts translucent entities in back to front order. A real culling
// system would frustum test against the camera here.
func (g *Game) buildVisibility() *visibility.Visibility {

	vis := visibility.New()

	for _, e := range g.Meshes.Entities() {

		if g.Hidden.Has(e) || g.HiddenProp.Has(e) {
			continue
		}

		tint := g.Rgbas.Get(e)
		if tint != nil && tint.A < 1 {
			vis.AppendOrdered(e)
		} else {
			vis.AddUnordered(e)
		}
	}

	return vis
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
}
