package cmd

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-mc-raytracer/pkg/scene"
)

// InspectPixel reports the surface seen through one pixel of a scene.
func InspectPixel(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Create(ctx.String("scene"), scene.Options{
		Seed:                ctx.Int64("seed"),
		TexturePath:         ctx.String("texture"),
		TextureMaxDimension: ctx.Int("texture-max"),
	})
	if err != nil {
		return err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	if width == 0 {
		width = sc.Width
	}
	if height == 0 {
		height = max(2, width*sc.Height/sc.Width)
	}

	result, err := sc.Inspect(width, height, ctx.Int("x"), ctx.Int("y"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Property", "Value"})

	if !result.Hit {
		table.Append([]string{"hit", "false (background)"})
	} else {
		table.Append([]string{"material", result.MaterialType})
		table.Append([]string{"point", fmt.Sprintf("(%.4g, %.4g, %.4g)", result.Point.X, result.Point.Y, result.Point.Z)})
		table.Append([]string{"normal", fmt.Sprintf("(%.3f, %.3f, %.3f)", result.Normal.X, result.Normal.Y, result.Normal.Z)})
		table.Append([]string{"distance", fmt.Sprintf("%.4g", result.Distance)})
		table.Append([]string{"front face", fmt.Sprintf("%t", result.FrontFace)})
		table.Append([]string{"uv", fmt.Sprintf("(%.3f, %.3f)", result.U, result.V)})

		keys := make([]string, 0, len(result.Properties))
		for key := range result.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			table.Append([]string{key, result.Properties[key]})
		}
	}
	table.Render()

	_, err = fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
