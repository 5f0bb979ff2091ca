package scene

import (
	"errors"
	"fmt"
)

// DefaultEnvironmentURL is the moonlit equirectangular HDRI the scene is lit by.
const DefaultEnvironmentURL = "https://dl.polyhaven.org/file/ph-assets/HDRIs/hdr/1k/moonlit_golf_1k.hdr"

// PlanetCount is the number of planets on the orbit ring.
const PlanetCount = 4

// PlanetSpec names a planet and the texture wrapped around it.
type PlanetSpec struct {
	Name    string
	Texture string
}

// Config holds the fixed constants the scene is built from.
type Config struct {
	Planets        []PlanetSpec
	PlanetRadius   float64
	PlanetSegments int
	OrbitRadius    float64

	// Planet group placement
	GroupTiltX   float64
	GroupOffsetY float64

	// SpinRate is the per-planet rotation in radians per second of elapsed time.
	SpinRate float64

	StarTexture  string
	StarRadius   float64
	StarSegments int

	EnvironmentURL string

	Camera CameraConfig
}

// CameraConfig describes the perspective camera.
type CameraConfig struct {
	FOVDeg float64
	Near   float64
	Far    float64
	Z      float64
}

// DefaultConfig returns the stock four-planet scene.
func DefaultConfig() Config {
	return Config{
		Planets: []PlanetSpec{
			{Name: "Csilla", Texture: "./csilla/color.png"},
			{Name: "Earth", Texture: "./earth/map.jpg"},
			{Name: "Venus", Texture: "./venus/map.jpg"},
			{Name: "Volcanic", Texture: "./volcanic/color.png"},
		},
		PlanetRadius:   1.3,
		PlanetSegments: 40,
		OrbitRadius:    4.2,
		GroupTiltX:     0.09,
		GroupOffsetY:   -0.9,
		SpinRate:       0.03,
		StarTexture:    "./stars.jpg",
		StarRadius:     20,
		StarSegments:   50,
		EnvironmentURL: DefaultEnvironmentURL,
		Camera: CameraConfig{
			FOVDeg: 25,
			Near:   0.1,
			Far:    100,
			Z:      8,
		},
	}
}

// Validate reports configuration that would break scene invariants.
func (c Config) Validate() error {
	var errs []error
	if len(c.Planets) != PlanetCount {
		errs = append(errs, fmt.Errorf("need %d planets, got %d", PlanetCount, len(c.Planets)))
	}
	if c.PlanetRadius <= 0 || c.OrbitRadius <= 0 || c.StarRadius <= 0 {
		errs = append(errs, errors.New("radii must be positive"))
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %.1f out of range", c.Camera.FOVDeg))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes %.2f..%.2f invalid", c.Camera.Near, c.Camera.Far))
	}
	return errors.Join(errs...)
}
