package textures

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"deferred-shading/logging"
	"deferred-shading/pipeline"
)

// AssetID identifies a loaded texture independently of its path.
type AssetID string

func newAssetID() AssetID {
	return AssetID(uuid.NewString())
}

// Image is decoded texel data: tightly packed 8-bit RGB rows, top row first.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Texture is an image resident on the GPU.
type Texture struct {
	ID     AssetID
	Name   string
	Path   string // empty for procedural textures
	Width  int
	Height int
	Handle pipeline.Texture
}

// Uploader creates and frees GPU textures.
type Uploader interface {
	UploadRGB(width, height int, pix []byte) (pipeline.Texture, error)
	DeleteTexture(tex pipeline.Texture)
}

// TextureManager manages loaded textures with caching
type TextureManager struct {
	textures map[string]*Texture
	byID     map[AssetID]*Texture
	mu       sync.RWMutex
	uploader Uploader
	logger   logging.Logger
}

func NewTextureManager(uploader Uploader, logger logging.Logger) *TextureManager {
	return &TextureManager{
		textures: make(map[string]*Texture),
		byID:     make(map[AssetID]*Texture),
		uploader: uploader,
		logger:   logger,
	}
}

// LoadTexture loads a texture from file, returning cached version if available
func (tm *TextureManager) LoadTexture(path string) (*Texture, error) {
	tm.mu.RLock()
	if tex, ok := tm.textures[path]; ok {
		tm.mu.RUnlock()
		return tex, nil
	}
	tm.mu.RUnlock()

	img, err := DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	tex, err := tm.CreateTexture(path, img)
	if err != nil {
		return nil, err
	}
	tex.Path = path
	return tex, nil
}

// GetOrDefault returns the texture at path. A texture that cannot be loaded
// is replaced by a procedural brick pattern, specular selecting the
// grey-scale mask variant.
func (tm *TextureManager) GetOrDefault(path string, specular bool) (*Texture, error) {
	if path != "" {
		tex, err := tm.LoadTexture(path)
		if err == nil {
			return tex, nil
		}
		tm.logger.Warnf("failed to load texture %s: %v", path, err)
	}

	key := "__bricks_diffuse__"
	if specular {
		key = "__bricks_specular__"
	}
	tm.mu.RLock()
	if tex, ok := tm.textures[key]; ok {
		tm.mu.RUnlock()
		return tex, nil
	}
	tm.mu.RUnlock()

	return tm.CreateTexture(key, BrickImage(256, specular))
}

// CreateTexture uploads img and caches it under name.
func (tm *TextureManager) CreateTexture(name string, img *Image) (*Texture, error) {
	handle, err := tm.uploader.UploadRGB(img.Width, img.Height, img.Pix)
	if err != nil {
		return nil, fmt.Errorf("upload texture %s: %w", name, err)
	}

	tex := &Texture{
		ID:     newAssetID(),
		Name:   name,
		Width:  img.Width,
		Height: img.Height,
		Handle: handle,
	}

	tm.mu.Lock()
	tm.textures[name] = tex
	tm.byID[tex.ID] = tex
	tm.mu.Unlock()

	tm.logger.Debugf("texture %s: %dx%d id=%s", name, img.Width, img.Height, tex.ID)
	return tex, nil
}

// Get returns a texture by id.
func (tm *TextureManager) Get(id AssetID) (*Texture, bool) {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	tex, ok := tm.byID[id]
	return tex, ok
}

// DestroyAll cleans up all loaded textures
func (tm *TextureManager) DestroyAll() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for _, tex := range tm.textures {
		tm.uploader.DeleteTexture(tex.Handle)
	}
	tm.textures = make(map[string]*Texture)
	tm.byID = make(map[AssetID]*Texture)
}

// DecodeFile reads a PNG, JPEG, GIF, BMP, TIFF or WebP file into RGB texels.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts any image to packed RGB, dropping alpha.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	out := &Image{Width: bounds.Dx(), Height: bounds.Dy()}
	out.Pix = make([]byte, out.Width*out.Height*3)
	for y := 0; y < out.Height; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < out.Width; x++ {
			copy(out.Pix[(y*out.Width+x)*3:], row[x*4:x*4+3])
		}
	}
	return out
}
