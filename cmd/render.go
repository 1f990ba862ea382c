package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-mc-raytracer/pkg/output"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
	"github.com/df07/go-mc-raytracer/pkg/scene"
)

// RenderFrame renders a built-in scene and writes the image.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)
	logSystemInfo()

	sc, err := scene.Create(ctx.String("scene"), scene.Options{
		Seed:                ctx.Int64("seed"),
		TexturePath:         ctx.String("texture"),
		TextureMaxDimension: ctx.Int("texture-max"),
	})
	if err != nil {
		return err
	}

	cfg := renderConfig(ctx, sc)
	rt, err := sc.NewRaytracer(cfg)
	if err != nil {
		return err
	}

	logger.Infof("scene %s at %dx%d, %d spp, depth %d on %d workers",
		sc.Name, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth, cfg.NumWorkers)

	// Interrupts only stop a render that has not started yet
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pixels, stats, err := rt.Render(runCtx)
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	img, err := output.ToImage(pixels, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	final := output.Scale(img, ctx.Float64("scale"))

	return writeImage(runCtx, ctx, final)
}

// renderConfig fills unset flags from the scene's suggested settings. A
// width without a height keeps the scene's aspect ratio.
func renderConfig(ctx *cli.Context, sc *scene.Scene) renderer.Config {
	cfg := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaultWorkers()
	}
	if cfg.Width > 0 && cfg.Height == 0 {
		cfg.Height = max(2, cfg.Width*sc.Height/sc.Width)
	}
	return sc.Config(cfg)
}

// namedSink is a sink together with the name the image is stored under
type namedSink struct {
	name string
	sink output.Sink
}

// writeImage saves the image to disk and, when a bucket is set, uploads it
func writeImage(runCtx context.Context, ctx *cli.Context, img image.Image) error {
	out := ctx.String("out")
	sinks := []namedSink{{filepath.Base(out), output.FileSink{Dir: filepath.Dir(out)}}}

	if bucket := ctx.String("s3-bucket"); bucket != "" {
		s3Sink, err := output.NewS3Sink(s3ConfigFromEnv(bucket))
		if err != nil {
			return err
		}
		key := ctx.String("s3-key")
		if key == "" {
			key = filepath.Base(out)
		}
		sinks = append(sinks, namedSink{key, s3Sink})
	}

	for _, s := range sinks {
		if err := s.sink.Write(runCtx, s.name, img); err != nil {
			return err
		}
	}
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Task", "Worker", "Seed", "Samples", "Primary rays", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.TaskID),
			fmt.Sprintf("%d", stat.WorkerID),
			fmt.Sprintf("%d", stat.Seed),
			fmt.Sprintf("%d", stat.Samples),
			fmt.Sprintf("%d", stat.PrimaryRays),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f/s", stats.RaysPerSecond()), stats.RenderTime.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
