package pinchzoom

import (
	"errors"
	"fmt"
	"image"
	"math"
	"net/url"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rwcarlsen/goexif/exif"
)

// ErrUnsupportedScheme is returned by SetSource for URIs that would need a
// network fetch.
var ErrUnsupportedScheme = errors.New("unsupported image source scheme")

// Surface is the rendering side of a viewer: it shows one image and redraws
// with whatever transform list it was last given.
type Surface interface {
	SetSource(uri string) error
	ApplyTransform(ops []TransformOp)
}

// DrawableSurface is a Surface that can draw itself onto an ebiten image.
type DrawableSurface interface {
	Surface
	Draw(dst *ebiten.Image)
}

// ImageSurface draws an image covering Bounds (scaled to fill, centered, the
// overflow cropped), then applies the transform list about the center of
// Bounds. Transform changes only rebuild a GeoM; nothing is re-laid out.
type ImageSurface struct {
	// Bounds is the logical screen-space box the image is laid out in.
	Bounds Rect

	img         *ebiten.Image
	source      string
	orientation int
	ops         []TransformOp
}

// NewImageSurface returns an empty surface laid out in bounds.
func NewImageSurface(bounds Rect) *ImageSurface {
	return &ImageSurface{Bounds: bounds, orientation: 1}
}

// NewImageSurfaceFromImage wraps an already decoded image.
func NewImageSurfaceFromImage(img *ebiten.Image, bounds Rect) *ImageSurface {
	return &ImageSurface{Bounds: bounds, img: img, orientation: 1}
}

// SetSource loads the image at uri, a local path or file:// URI. EXIF
// orientation is honored when present.
func (s *ImageSurface) SetSource(uri string) error {
	path, err := sourcePath(uri)
	if err != nil {
		return err
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return fmt.Errorf("load image %s: %w", path, err)
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = img
	s.source = uri
	s.orientation = readOrientation(path)
	if debugEnabled {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		debugf("surface: loaded %s (%dx%d, orientation %d)", path, w, h, s.orientation)
	}
	return nil
}

// Source returns the URI last loaded with SetSource.
func (s *ImageSurface) Source() string {
	return s.source
}

// Image returns the displayed image, or nil before a source is set.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// ApplyTransform implements Surface.
func (s *ImageSurface) ApplyTransform(ops []TransformOp) {
	s.ops = append(s.ops[:0], ops...)
}

// Ops returns the transform list last applied.
func (s *ImageSurface) Ops() []TransformOp {
	return s.ops
}

// GeoM returns the full image-to-screen matrix for the current state.
func (s *ImageSurface) GeoM() ebiten.GeoM {
	if s.img == nil {
		return ebiten.GeoM{}
	}
	b := s.img.Bounds()
	return geoM(imageMatrix(float64(b.Dx()), float64(b.Dy()), s.orientation, s.Bounds, s.ops))
}

// Draw implements DrawableSurface. Only the part of the image that covers
// Bounds is drawn.
func (s *ImageSurface) Draw(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	b := s.img.Bounds()
	crop := coverCrop(b.Dx(), b.Dy(), s.orientation, s.Bounds)
	if crop.Empty() {
		return
	}
	m := imageMatrix(float64(b.Dx()), float64(b.Dy()), s.orientation, s.Bounds, s.ops)
	// A sub-image is drawn with its top-left corner at the origin.
	m = multiplyAffine(m, [6]float64{1, 0, 0, 1, float64(crop.Min.X), float64(crop.Min.Y)})

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(m)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.img.SubImage(crop.Add(b.Min)).(*ebiten.Image), op)
}

// imageMatrix maps pixel space of a w x h image with the given EXIF
// orientation to screen space:
//
//	Translate(bounds) * ops (about bounds center) * cover-fit * orientation
func imageMatrix(w, h float64, orientation int, bounds Rect, ops []TransformOp) [6]float64 {
	orient, ow, oh := orientationMatrix(orientation, w, h)

	m := [6]float64{1, 0, 0, 1, bounds.X, bounds.Y}
	m = multiplyAffine(m, opsMatrix(ops, bounds.Width, bounds.Height))
	m = multiplyAffine(m, coverFit(ow, oh, bounds))
	return multiplyAffine(m, orient)
}

// coverFit scales an upright ow x oh image to fill bounds and centers it.
func coverFit(ow, oh float64, bounds Rect) [6]float64 {
	if ow <= 0 || oh <= 0 {
		return identityTransform
	}
	f := max(bounds.Width/ow, bounds.Height/oh)
	return [6]float64{f, 0, 0, f, (bounds.Width - ow*f) / 2, (bounds.Height - oh*f) / 2}
}

// coverCrop returns the region of the stored w x h image that stays inside
// bounds after cover-fitting, relative to the image's top-left corner.
func coverCrop(w, h, orientation int, bounds Rect) image.Rectangle {
	full := image.Rect(0, 0, w, h)
	orient, ow, oh := orientationMatrix(orientation, float64(w), float64(h))
	fit := coverFit(ow, oh, bounds)
	if fit[0] <= 0 {
		return full
	}
	// Visible upright region, then back to stored pixels.
	vw, vh := bounds.Width/fit[0], bounds.Height/fit[0]
	x0, y0 := (ow-vw)/2, (oh-vh)/2
	inv := invertAffine(orient)
	ax, ay := transformPoint(inv, x0, y0)
	bx, by := transformPoint(inv, x0+vw, y0+vh)
	r := image.Rect(
		int(math.Floor(min(ax, bx)+1e-9)), int(math.Floor(min(ay, by)+1e-9)),
		int(math.Ceil(max(ax, bx)-1e-9)), int(math.Ceil(max(ay, by)-1e-9)),
	)
	return r.Intersect(full)
}

// orientationMatrix returns the matrix that displays a w x h image stored
// with EXIF orientation o upright, plus the upright dimensions.
func orientationMatrix(o int, w, h float64) ([6]float64, float64, float64) {
	switch o {
	case 2: // mirrored horizontally
		return [6]float64{-1, 0, 0, 1, w, 0}, w, h
	case 3: // rotated 180
		return [6]float64{-1, 0, 0, -1, w, h}, w, h
	case 4: // mirrored vertically
		return [6]float64{1, 0, 0, -1, 0, h}, w, h
	case 5: // transposed
		return [6]float64{0, 1, 1, 0, 0, 0}, h, w
	case 6: // needs 90 clockwise
		return [6]float64{0, 1, -1, 0, h, 0}, h, w
	case 7: // transversed
		return [6]float64{0, -1, -1, 0, h, w}, h, w
	case 8: // needs 90 counter-clockwise
		return [6]float64{0, -1, 1, 0, 0, w}, h, w
	}
	return identityTransform, w, h
}

// sourcePath resolves a local path or file:// URI to a filesystem path.
func sourcePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse image source %q: %w", uri, err)
	}
	switch {
	case u.Scheme == "":
		return uri, nil
	case len(u.Scheme) == 1:
		// Windows drive letter, e.g. C:\photos\cat.jpg.
		return uri, nil
	case u.Scheme == "file":
		if u.Path != "" {
			return u.Path, nil
		}
		return u.Opaque, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
}

// readOrientation returns the EXIF orientation of the file at path, or 1
// when it has none.
func readOrientation(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 1
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return 1 // no EXIF is the common case for PNGs
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}
