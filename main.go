package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-mc-raytracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-mc-raytracer"
	app.Usage = "render scenes with a multi-threaded Monte Carlo path tracer"
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
			Name:  "env-file",
			Value: ".env",
			Usage: "file with environment variables for the object store",
		},
	}
	app.Before = cmd.LoadEnv
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render one of the built-in scenes. The sample budget is split across workers,
each of which renders the whole frame with its own random stream; the worker
images are then averaged.

Flags left at zero take the scene's suggested values.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "weekend",
					Usage: "scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of render workers (default: logical cores)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1.0,
					Usage: "resample the final image by this factor",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for the earth texture",
				},
				cli.IntFlag{
					Name:  "texture-max",
					Value: 2048,
					Usage: "downscale textures larger than this",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					EnvVar: "S3_BUCKET",
					Usage:  "also upload the image to this bucket",
				},
				cli.StringFlag{
					Name:  "s3-key",
					Usage: "object key for the upload (default: output filename)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "inspect",
			Usage: "show the surface seen through one pixel",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "weekend",
					Usage: "scene to inspect",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "x",
					Usage: "pixel column, from the left",
				},
				cli.IntFlag{
					Name:  "y",
					Usage: "pixel row, from the top",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene layout",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image file for the earth texture",
				},
				cli.IntFlag{
					Name:  "texture-max",
					Value: 2048,
					Usage: "downscale textures larger than this",
				},
			},
			Action: cmd.InspectPixel,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
