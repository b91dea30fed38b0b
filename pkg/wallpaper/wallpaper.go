// Package wallpaper turns a resolved picture-of-the-day into the desktop
// background: it downloads the image with bounded retry, composes the final
// canvas and hands the saved file to the OS.
package wallpaper

// OS abstracts the desktop environment collaborators: querying the primary
// screen resolution and setting the desktop picture.
type OS interface {
	getDesktopDimension() (int, int, error)
	setWallpaper(path string) error
}
