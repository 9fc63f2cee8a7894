//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"image"
)

// WriteImage is unavailable on this platform.
func WriteImage(image.Image) error {
	return fmt.Errorf("clipboard image operations are not supported on this platform")
}
