package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"
)

// GLFW must run on the main thread on some platforms.
func init() {
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "oxyview"
	app.Usage = "view wavefront scenes with a forward PBR renderer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "per-subsystem log levels, e.g. renderer=debug,opengl=warning",
		},
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML configuration file",
		},
		cli.StringFlag{
			Name:  "textures",
			Usage: "directory or URL prefix textures resolve under (overrides config)",
		},
		cli.StringFlag{
			Name:  "models",
			Usage: "directory or URL prefix material libraries resolve under (overrides config)",
		},
		cli.StringFlag{
			Name:  "shaders",
			Usage: "directory or URL prefix holding the GLSL programs (overrides config)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open a window and fly through a scene",
			Description: `
Load a scene and its material libraries, then render it interactively. Click into
the window to capture the pointer, move with WASD, rise with space and sink with
shift. Escape releases the pointer; a second escape closes the window.`,
			ArgsUsage: "scene.obj",
			Flags: append(sceneFlags,
				cli.IntFlag{
					Name:  "width",
					Usage: "window width (overrides config)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "window height (overrides config)",
				},
				cli.BoolFlag{
					Name:  "profile",
					Usage: "log frame rate and memory statistics every second",
				},
				cli.Float64Flag{
					Name:  "fps",
					Usage: "cap the frame rate (0 = uncapped)",
				},
			),
			Action: View,
		},
		{
			Name:  "inspect",
			Usage: "load a scene without a window and print its nodes and materials",
			Description: `
Parse a scene on a headless device and print tables of its scene graph and
materials. When the shader programs are reachable, one frame is also issued and
its draw statistics are printed.`,
			ArgsUsage: "scene.obj",
			Flags:     sceneFlags,
			Action:    Inspect,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
