// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Headless snapshot mode, ASCII fallback for non-TTY output
// 0.2.0 - Radiance HDR environment lighting, textured planets
// 0.1.0 - Initial release: starfield, orbiting planets, wheel/swipe headings
