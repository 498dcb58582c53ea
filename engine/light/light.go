package light

import "github.com/go-gl/mathgl/mgl32"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	color     mgl32.Vec3
	intensity float32
	enabled   bool
}

// Light defines the interface for a point light carried by a scene node.
//
// A light has no position of its own: the renderer places it at the translation of the
// owning node's world transform each frame. Color is the radiance at unit distance
// before intensity is applied.
type Light interface {
	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Intensity returns the scalar multiplier applied to Color.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is collected for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// Radiance returns Color scaled by Intensity, the value written to the light slot.
	//
	// Returns:
	//   - mgl32.Vec3: the emitted color
	Radiance() mgl32.Vec3

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: color components
	SetColor(c mgl32.Vec3)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to collect the light for rendering
	SetEnabled(enabled bool)

	// Copy returns an independent light with the same properties.
	//
	// Returns:
	//   - Light: the copy
	Copy() Light
}

var _ Light = &lightImpl{}

// NewLight creates a new enabled white Light with intensity 1, then applies options.
//
// Parameters:
//   - options: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		color:     mgl32.Vec3{1, 1, 1},
		intensity: 1,
		enabled:   true,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) Radiance() mgl32.Vec3 {
	return l.color.Mul(l.intensity)
}

func (l *lightImpl) SetColor(c mgl32.Vec3) {
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) Copy() Light {
	c := *l
	return &c
}
