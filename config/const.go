package config

import "strings"

// AppVersion is the version of the application.
var AppVersion string // Or get it from version.txt during build

// AppName is the name of the application.
const AppName = "wikiwall"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// UserAgent identifies the client on every outbound HTTP request. Wikimedia
// sites throttle or reject blank user agents, so we send a realistic one.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 " + AppName + "/1.0"

// JPEGQuality is the encode quality for the output wallpaper.
const JPEGQuality = 95

// OutputFilePattern names the wallpaper file for a run; the argument is the
// run's ISO date (2006-01-02).
const OutputFilePattern = AppName + "_%s.jpg"

// Default canvas dimensions used when screen detection fails.
const (
	DefaultCanvasWidth  = 1920
	DefaultCanvasHeight = 1080
)
