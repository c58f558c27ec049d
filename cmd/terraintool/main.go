// terraintool is a CLI utility for inspecting heightmaps and exporting terrain meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/landscape/internal/engine/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "height", "h":
		cmdHeight(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap terrain utility

Usage:
  terraintool <command> [options]

Commands:
  info <image>                         Show heightmap size and sample range
  height [flags] <image> <x> <z>       Print terrain elevation at a world position
  export [flags] <image> <out.glb>     Build the terrain mesh and write glTF

Flags (height, export):
  -width, -depth      World extent (default 500x500)
  -max-height         Elevation of a white sample (default 20)
  -segments           Grid resolution on both axes (export only, default 128)

Examples:
  terraintool info heightmap.png
  terraintool height -max-height 50 heightmap.png 250 125
  terraintool export -segments 256 heightmap.png terrain.glb`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// terrainFlags registers the world-size flags shared by height and export.
func terrainFlags(fs *flag.FlagSet) *terrain.Params {
	p := &terrain.Params{Width: 500, Depth: 500, MaxHeight: 20}
	fs.Func("width", "world width", floatFlag(&p.Width))
	fs.Func("depth", "world depth", floatFlag(&p.Depth))
	fs.Func("max-height", "max elevation", floatFlag(&p.MaxHeight))
	return p
}

func floatFlag(dst *float32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		*dst = float32(v)
		return nil
	}
}

func loadTerrain(path string, params terrain.Params) *terrain.Terrain {
	hm, err := terrain.LoadHeightmap(path)
	if err != nil {
		fail("Error: %v", err)
	}
	t, err := terrain.New(hm, params)
	if err != nil {
		fail("Error: %v", err)
	}
	return t
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fail("Usage: terraintool info <image>")
	}

	hm, err := terrain.LoadHeightmap(args[0])
	if err != nil {
		fail("Error: %v", err)
	}

	lo, hi := float32(1), float32(0)
	var sum float64
	for y := range hm.Height() {
		for x := range hm.Width() {
			s := hm.At(x, y)
			lo = min(lo, s)
			hi = max(hi, s)
			sum += float64(s)
		}
	}

	fmt.Printf("Heightmap: %s\n", args[0])
	fmt.Printf("Size:      %dx%d\n", hm.Width(), hm.Height())
	fmt.Printf("Min:       %.4f\n", lo)
	fmt.Printf("Max:       %.4f\n", hi)
	fmt.Printf("Mean:      %.4f\n", sum/float64(hm.Width()*hm.Height()))
}

func cmdHeight(args []string) {
	fs := flag.NewFlagSet("height", flag.ExitOnError)
	params := terrainFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 3 {
		fail("Usage: terraintool height [flags] <image> <x> <z>")
	}

	x, errX := strconv.ParseFloat(fs.Arg(1), 32)
	z, errZ := strconv.ParseFloat(fs.Arg(2), 32)
	if errX != nil || errZ != nil {
		fail("Error: coordinates must be numbers")
	}

	t := loadTerrain(fs.Arg(0), *params)
	fmt.Printf("%.4f\n", t.HeightAt(float32(x), float32(z)))
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	params := terrainFlags(fs)
	segments := fs.Int("segments", terrain.DefaultSegments, "grid resolution")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fail("Usage: terraintool export [flags] <image> <out.glb>")
	}

	params.SegmentsX = *segments
	params.SegmentsZ = *segments
	t := loadTerrain(fs.Arg(0), *params)
	mesh := terrain.BuildMesh(t)

	if err := terrain.ExportGLTF(fs.Arg(1), terrain.Part{Name: "terrain", Mesh: mesh}); err != nil {
		fail("Error: %v", err)
	}

	fmt.Printf("Wrote %s: %d vertices, %d triangles\n", fs.Arg(1), mesh.VertexCount(), mesh.TriangleCount())
}
