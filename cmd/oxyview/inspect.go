package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/config"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu/headless"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-forward/engine/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Inspect loads the scene given as the only argument on a headless device and prints it.
func Inspect(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errMissingScene
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return inspect(context.Background(), os.Stdout, ctx.Args().First(), cfg)
}

func inspect(ctx context.Context, out io.Writer, sceneFile string, cfg *config.Config) error {
	device := headless.NewDevice()
	s, err := newLoader(device, cfg).Load(ctx, sceneFile)
	if err != nil {
		return err
	}
	placeLights(s, cfg.Lights)

	fmt.Fprintf(out, "scene: %s\n", sceneFile)
	writeNodes(out, s)
	writeMaterials(out, s)

	r := newRenderer(device, s, cfg)
	if err := r.Init(ctx); err != nil {
		logger.Warningf("skipping frame statistics: %v", err)
		return nil
	}
	stats, err := r.RenderFrame()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Frame", "Value"})
	table.Append([]string{"Nodes visited", strconv.Itoa(stats.NodesVisited)})
	table.Append([]string{"Draw calls", strconv.Itoa(stats.DrawCalls)})
	table.Append([]string{"Lights bound", strconv.Itoa(stats.LightsBound)})
	table.Append([]string{"Lights dropped", strconv.Itoa(stats.LightsDropped)})
	buffers, textures, programs := device.Counts()
	table.Append([]string{"GPU buffers", strconv.Itoa(buffers)})
	table.Append([]string{"GPU textures", strconv.Itoa(textures)})
	table.Append([]string{"GPU programs", strconv.Itoa(programs)})
	table.Render()
	return nil
}

func writeNodes(out io.Writer, s scene.Scene) {
	depth := map[*scene.Node]int{}

	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Node", "Kind", "Vertices", "Triangles", "Groups"})
	for n, parent := range s.Root().Traverse() {
		if parent != nil {
			depth[n] = depth[parent] + 1
		}
		row := []string{strings.Repeat("  ", depth[n]) + n.Name, n.Kind.String(), "", "", ""}
		if n.Kind == scene.KindMesh && n.Mesh != nil {
			row[2] = strconv.Itoa(n.Mesh.VertexCount())
			row[3] = strconv.Itoa(n.Mesh.TriangleCount())
			row[4] = strconv.Itoa(len(n.Mesh.Groups))
		}
		table.Append(row)
	}
	table.Render()
}

func writeMaterials(out io.Writer, s scene.Scene) {
	materials := s.Materials()
	names := common.SortedKeys(materials)

	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Material", "Albedo", "Roughness", "Metalness", "Maps"})
	for _, name := range names {
		m := materials[name]
		table.Append([]string{name, albedoCell(m), scalarCell(m.Roughness()), scalarCell(m.Metalness()), mapsCell(m)})
	}
	table.Render()
}

func albedoCell(m material.Material) string {
	c, ok := m.Albedo()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f %.2f %.2f", c[0], c[1], c[2])
}

func scalarCell(v float32, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

func mapsCell(m material.Material) string {
	var maps []string
	for _, entry := range []struct {
		name string
		tex  gpu.Texture
	}{
		{"albedo", m.AlbedoMap()},
		{"normal", m.NormalMap()},
		{"roughness", m.RoughnessMap()},
		{"metalness", m.MetalnessMap()},
	} {
		if entry.tex != nil {
			maps = append(maps, entry.name+"="+entry.tex.Source())
		}
	}
	if len(maps) == 0 {
		return "-"
	}
	return strings.Join(maps, ", ")
}
