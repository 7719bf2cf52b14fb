package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/jfl07/go-wavefront-pathtracer/cmd"
)

func newApp() *cli.App {
	// The default version flag aliases -v which we use for verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-wavefront-pathtracer"
	app.Usage = "render scenes with wavefront path tracing"
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
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a scene to a PNG file",
			ArgsUsage: "[scene.json]",
			Description: `
Render a scene described by a JSON scene file. When no scene file is given,
a built-in demo scene is rendered instead.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples (iterations) per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 8,
					Usage: "maximum bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of shading workers (0 = one per CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:      "validate",
			Usage:     "load and validate a scene file without rendering",
			ArgsUsage: "scene.json",
			Action:    cmd.ValidateScene,
		},
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
