package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"ssao-renderer/capture"
	"ssao-renderer/core"
	"ssao-renderer/scene"
	"ssao-renderer/ssao"
)

// Config holds every setting of a session. Start from DefaultConfig.
type Config struct {
	Window core.WindowConfig

	// MeshPath is an .obj, .gltf or .glb file placed by MeshTranslate and
	// MeshScale.
	MeshPath      string
	MeshTranslate mgl32.Vec3
	MeshScale     float32
	MeshColor     mgl32.Vec3

	// Floor is a square of FloorHalfExtent at height FloorY. Zero extent
	// disables it.
	FloorHalfExtent float32
	FloorY          float32
	FloorColor      mgl32.Vec3

	CameraStart mgl32.Vec3
	Light       scene.PointLight

	SSAO ssao.Params
	// Seed for the kernel and noise tile; 0 picks one from the clock.
	Seed int64

	AmbientStrength float32
	Shininess       float32
	ClearColor      core.Color

	CaptureDir    string
	CaptureFormat capture.Format

	Debug bool
}

func DefaultConfig() Config {
	window := core.DefaultWindowConfig()
	window.Title = "SSAO"

	return Config{
		Window: window,

		MeshPath:      "res/models/blocks.obj",
		MeshTranslate: mgl32.Vec3{0, 0, -1},
		MeshScale:     0.5,
		MeshColor:     scene.DefaultMeshColor,

		FloorHalfExtent: 5,
		FloorY:          -0.5,
		FloorColor:      mgl32.Vec3{0.8, 0.8, 0.8},

		CameraStart: mgl32.Vec3{0, 0.5, 3},
		Light: scene.PointLight{
			Position: mgl32.Vec3{2, 4, 3},
			Color:    mgl32.Vec3{1.4, 1.3, 1.2},
		},

		SSAO: ssao.DefaultParams(),

		AmbientStrength: 0.3,
		Shininess:       8,
		ClearColor:      core.Color{R: 0.2, G: 0.3, B: 0.3, A: 1},

		CaptureDir:    "captures",
		CaptureFormat: capture.PNG,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.MeshPath == "" {
		errs = append(errs, errors.New("mesh path is empty"))
	}
	if c.MeshScale <= 0 {
		errs = append(errs, fmt.Errorf("mesh scale %v must be positive", c.MeshScale))
	}
	if c.FloorHalfExtent < 0 {
		errs = append(errs, fmt.Errorf("floor half extent %v must not be negative", c.FloorHalfExtent))
	}
	if err := c.SSAO.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.AmbientStrength < 0 {
		errs = append(errs, fmt.Errorf("ambient strength %v must not be negative", c.AmbientStrength))
	}
	if c.Shininess <= 0 {
		errs = append(errs, fmt.Errorf("shininess %v must be positive", c.Shininess))
	}
	if c.Light.Linear < 0 || c.Light.Quadratic < 0 {
		errs = append(errs, errors.New("light attenuation terms must not be negative"))
	}
	if _, err := capture.ParseFormat(string(c.CaptureFormat)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
