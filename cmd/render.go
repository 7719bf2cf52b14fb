package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/jfl07/go-wavefront-pathtracer/log"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/renderer"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
)

var logger = log.New("cmd")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}

// loadScene loads the scene file argument, or the built-in demo scene when
// no argument is given
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() == 0 {
		logger.Notice("no scene file given, using built-in box scene")
		return scene.NewBoxScene(), nil
	}
	if ctx.NArg() != 1 {
		return nil, errors.New("expected at most one scene file argument")
	}
	return scene.Load(ctx.Args().First())
}

// RenderScene renders a scene to a PNG file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	integrator := renderer.NewIntegrator(sc, renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      ctx.Int("workers"),
	})

	img, stats := integrator.Render()

	out := ctx.String("out")
	if err := renderer.WritePNG(img, out); err != nil {
		return err
	}

	logger.Noticef("frame saved to %s", out)
	logger.Noticef("render statistics\n%s", stats.FormatTable())
	return nil
}

// ValidateScene loads and validates a scene file without rendering it.
func ValidateScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene ok: %d primitives, %d materials, %d lights",
		len(sc.Geometry), len(sc.Materials), sc.Lights().Count())
	return nil
}
