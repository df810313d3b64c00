package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	maxDimension = 800
	quality      = 85
)

// SaveProductImage decodes an uploaded image, fits it into 800x800 and
// stores it as webp under mediaDir/products. Returns the public URI path.
func SaveProductImage(mediaDir string, productID uint, r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	dir := filepath.Join(mediaDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d.webp", productID)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := webp.Encode(f, img, &webp.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}
	return "/media/products/" + name, nil
}
