//go:build linux
// +build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dixieflatline76/wikiwall/pkg/sysinfo"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct{}

// getOS returns a new instance of the linuxOS struct.
func getOS() OS {
	return &linuxOS{}
}

// setWallpaper sets the desktop wallpaper on Linux, supporting X11 and some Wayland compositors.
func (l *linuxOS) setWallpaper(imagePath string) error {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	switch {
	case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "unity") || strings.Contains(desktopEnv, "cinnamon"):
		return l.setWallpaperGNOME(imagePath)
	case strings.Contains(desktopEnv, "kde"):
		return l.setWallpaperKDE(imagePath)
	case strings.Contains(desktopEnv, "xfce"):
		return l.setWallpaperXFCE(imagePath)
	default:
		return fmt.Errorf("unsupported desktop environment: %s", desktopEnv)
	}
}

// getDesktopDimension returns the desktop dimensions on Linux.
func (l *linuxOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}

// setWallpaperGNOME sets the wallpaper for GNOME-based desktop environments.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	cmd := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", fmt.Sprintf("file://%s", imagePath))
	return cmd.Run()
}

// setWallpaperKDE sets the wallpaper for KDE.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := fmt.Sprintf(`
            var allDesktops = desktops();
            for (i=0;i<allDesktops.length;i++) {
                d = allDesktops[i];
                d.wallpaperPlugin = "org.kde.image";
                d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
                d.writeConfig("Image", "file://%s");
            }
        `, imagePath)

	cmd := exec.Command("qdbus", "org.kde.plasmashell", "/PlasmaShell", "org.kde.PlasmaShell.evaluateScript", script)
	return cmd.Run()
}

// setWallpaperXFCE sets the wallpaper for XFCE.
func (l *linuxOS) setWallpaperXFCE(imagePath string) error {
	cmd := exec.Command("xfconf-query", "-c", "xfce4-desktop", "-p", "/backdrop/screen0/monitor0/workspace0/last-image", "-s", imagePath)
	return cmd.Run()
}
