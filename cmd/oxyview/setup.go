package main

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/asset"
	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/config"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/loader"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"
)

var errMissingScene = errors.New("missing scene file argument")

// overrides are the command line values that take precedence over the config file.
type overrides struct {
	Textures string
	Models   string
	Shaders  string
	Width    int
	Height   int
}

func overridesFrom(ctx *cli.Context) overrides {
	return overrides{
		Textures: ctx.String("textures"),
		Models:   ctx.String("models"),
		Shaders:  ctx.String("shaders"),
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
	}
}

// loadConfig reads the config named by --config and applies the command line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, overridesFrom(ctx))
	return cfg, cfg.Validate()
}

func applyOverrides(cfg *config.Config, o overrides) {
	cfg.Paths.Textures = common.Coalesce(o.Textures, cfg.Paths.Textures)
	cfg.Paths.Models = common.Coalesce(o.Models, cfg.Paths.Models)
	cfg.Paths.Shaders = common.Coalesce(o.Shaders, cfg.Paths.Shaders)
	cfg.Window.Width = common.Coalesce(o.Width, cfg.Window.Width)
	cfg.Window.Height = common.Coalesce(o.Height, cfg.Window.Height)
}

// skyFaces resolves the configured cube map faces under the textures root.
func skyFaces(cfg *config.Config) ([6]string, bool) {
	var faces [6]string
	if len(cfg.Paths.Sky) != len(faces) {
		return faces, false
	}
	for i, name := range cfg.Paths.Sky {
		faces[i] = asset.Join(cfg.Paths.Textures, name)
	}
	return faces, true
}

func newLoader(device gpu.Device, cfg *config.Config) loader.Loader {
	return loader.NewLoader(
		loader.WithDevice(device),
		loader.WithTexturesRoot(cfg.Paths.Textures),
		loader.WithModelsRoot(cfg.Paths.Models),
	)
}

func newCamera(cfg *config.Config) camera.Camera {
	pos := cfg.Camera.Position
	return camera.NewCamera(
		camera.WithPosition(pos[0], pos[1], pos[2]),
		camera.WithFov(mgl32.DegToRad(cfg.Camera.Fov)),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
		camera.WithController(camera.NewFlyController(
			camera.WithSpeed(cfg.Camera.Speed),
			camera.WithRotationSpeed(cfg.Camera.RotationSpeed),
		)),
	)
}

func newRenderer(device gpu.Device, s scene.Scene, cfg *config.Config) renderer.Renderer {
	options := []renderer.RendererBuilderOption{
		renderer.WithScene(s),
		renderer.WithCamera(newCamera(cfg)),
		renderer.WithMaxLights(cfg.Renderer.MaxLights),
		renderer.WithClearColor(cfg.Renderer.ClearColor),
		renderer.WithShadersRoot(cfg.Paths.Shaders),
	}
	if faces, ok := skyFaces(cfg); ok {
		options = append(options, renderer.WithSkyFaces(faces))
	}
	return renderer.NewRenderer(device, options...)
}

// placeLights adds a light node per configured light. A parent that is not in the scene
// attaches the light to the root instead.
func placeLights(s scene.Scene, lights []config.Light) {
	root := s.Root()
	for _, l := range lights {
		parent := root
		if l.Parent != "" {
			if found := root.FindByName(l.Parent); found != nil {
				parent = found
			} else {
				logger.Warningf("light '%s': parent '%s' not found, attaching to root", l.Name, l.Parent)
			}
		}
		node := scene.NewLightNode(l.Name,
			light.NewLight(light.WithColor(l.Color[0], l.Color[1], l.Color[2])),
			scene.WithPosition(l.Position[0], l.Position[1], l.Position[2]),
		)
		parent.AddChild(node)
	}
}
