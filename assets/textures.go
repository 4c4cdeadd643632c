package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
	"github.com/norman784/amethyst/materials"
)

type Texture struct {
	TexID  uint32
	Width  int32
	Height int32
}

type TextureLoadOptions struct {
	GenMipMaps bool
}

var (
	DefaultAlbedoTexId   Texture
	DefaultEmissionTexId Texture
)

// LoadTexturePNG decodes a PNG, converts it to RGBA and uploads it to the
// GPU. Requires a current GL context.
func LoadTexturePNG(path string, opts *TextureLoadOptions) (Texture, error) {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	file, err := os.Open(path)
	if err != nil {
		return Texture{}, errors.New("Failed to open texture file. Err: " + err.Error())
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return Texture{}, errors.New("Failed to decode png. Err: " + err.Error())
	}

	rgba := prism.ConvertImageToRGBA(img, runtime.NumCPU())
	return NewTextureFromRGBA(rgba, opts), nil
}

// NewTextureFromRGBA uploads an RGBA image to a new GL texture.
func NewTextureFromRGBA(img *image.RGBA, opts *TextureLoadOptions) Texture {

	if opts == nil {
		opts = &TextureLoadOptions{}
	}

	bounds := img.Bounds()
	tex := Texture{
		Width:  int32(bounds.Dx()),
		Height: int32(bounds.Dy()),
	}

	gl.GenTextures(1, &tex.TexID)
	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))

	if opts.GenMipMaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func newSolidColorTexture(r, g, b, a uint8) Texture {

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0] = r
	img.Pix[1] = g
	img.Pix[2] = b
	img.Pix[3] = a

	return NewTextureFromRGBA(img, nil)
}

// InitDefaults creates the engine-wide default textures: white albedo so
// untextured geometry shows its vertex colors unchanged, black emission.
// Must run once after GL init and before any material binds.
func InitDefaults() {
	DefaultAlbedoTexId = newSolidColorTexture(255, 255, 255, 255)
	DefaultEmissionTexId = newSolidColorTexture(0, 0, 0, 255)
}

// DefaultMaterials returns the material defaults resource backed by the
// engine default textures.
func DefaultMaterials() materials.Defaults {
	return materials.Defaults{
		AlbedoTex:   DefaultAlbedoTexId.TexID,
		EmissionTex: DefaultEmissionTexId.TexID,
	}
}
