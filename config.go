package flycam

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default camera and frame constants.
const (
	DefaultFOV          = math.Pi / 2 // 90 degrees
	DefaultNear         = 0.01
	DefaultFar          = 100.0
	DefaultPitchEpsilon = 1e-5
	// DefaultTPS is the update rate the per-frame speed was tuned for.
	DefaultTPS = 60
	// DefaultMoveSpeed is 0.1 world units per frame at DefaultTPS.
	DefaultMoveSpeed = 0.1 * DefaultTPS
	// DefaultSensitivity converts cursor pixels into radians.
	DefaultSensitivity = 0.0025
)

// CameraConfig holds the projection and movement parameters of a Camera.
type CameraConfig struct {
	// FOV is the vertical field of view in radians.
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// MoveSpeed is in world units per second; displacement is scaled by
	// the frame's elapsed time.
	MoveSpeed float32 `yaml:"move_speed"`
	// PitchEpsilon keeps pitch strictly away from straight up/down.
	PitchEpsilon float32 `yaml:"pitch_epsilon"`
}

// Bindings maps the planar movement actions to keys.
type Bindings struct {
	Forward KeyCode `yaml:"forward"`
	Back    KeyCode `yaml:"back"`
	Left    KeyCode `yaml:"left"`
	Right   KeyCode `yaml:"right"`
	Quit    KeyCode `yaml:"quit"`
}

// GridConfig describes the startup batch of instances.
type GridConfig struct {
	Size    int     `yaml:"size"`
	Spacing float32 `yaml:"spacing"`
}

// Config is the top-level viewer configuration.
type Config struct {
	Camera   CameraConfig `yaml:"camera"`
	Bindings Bindings     `yaml:"bindings"`
	// Sensitivity is radians of rotation per pixel of pointer motion.
	Sensitivity float32    `yaml:"sensitivity"`
	Grid        GridConfig `yaml:"grid"`
	// Mesh is an optional glTF/GLB path. Empty means the built-in cube.
	Mesh string `yaml:"mesh"`
}

// DefaultCameraConfig returns the fixed constants of the reference viewer.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:          DefaultFOV,
		Near:         DefaultNear,
		Far:          DefaultFar,
		MoveSpeed:    DefaultMoveSpeed,
		PitchEpsilon: DefaultPitchEpsilon,
	}
}

// DefaultBindings returns WASD movement with Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: KeyW,
		Back:    KeyS,
		Left:    KeyA,
		Right:   KeyD,
		Quit:    KeyEscape,
	}
}

// DefaultConfig returns a Config populated with every default.
func DefaultConfig() Config {
	return Config{
		Camera:      DefaultCameraConfig(),
		Bindings:    DefaultBindings(),
		Sensitivity: DefaultSensitivity,
		Grid:        GridConfig{Size: 10, Spacing: 1},
	}
}

// Validate reports the first problem found in c, wrapped in ErrInvalidConfig.
func (c CameraConfig) Validate() error {
	switch {
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return errors.Wrapf(ErrInvalidConfig, "fov %v outside (0, pi)", c.FOV)
	case c.Near <= 0:
		return errors.Wrapf(ErrInvalidConfig, "near %v must be positive", c.Near)
	case c.Far <= c.Near:
		return errors.Wrapf(ErrInvalidConfig, "far %v must exceed near %v", c.Far, c.Near)
	case c.MoveSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "move_speed %v is negative", c.MoveSpeed)
	case c.PitchEpsilon <= 0 || c.PitchEpsilon >= math.Pi/2:
		return errors.Wrapf(ErrInvalidConfig, "pitch_epsilon %v outside (0, pi/2)", c.PitchEpsilon)
	}
	return nil
}

// Validate checks the camera section and the remaining fields.
func (c Config) Validate() error {
	if err := c.Camera.Validate(); err != nil {
		return errors.Wrap(err, "camera")
	}
	if c.Sensitivity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "sensitivity %v is negative", c.Sensitivity)
	}
	if c.Grid.Size < 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid size %d is negative", c.Grid.Size)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return ParseConfig(data)
}
