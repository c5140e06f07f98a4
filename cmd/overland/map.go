package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/overland/internal/config"
	"github.com/vovakirdan/overland/internal/core"
	"github.com/vovakirdan/overland/internal/platform/tui"
	"github.com/vovakirdan/overland/internal/world"
)

var (
	flagMapCX int
	flagMapCY int
	flagMapW  int
	flagMapH  int
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print a region of the generated world",
	Long: `Render a rectangular region of the world to stdout, one colored
character per tile. Useful for inspecting terrain generation.

The region is centered on the given tile coordinate. Width and height
default to the terminal size.

Examples:
  overland map
  overland map --cx 100 --cy -50
  overland map --width 120 --height 60`,
	Run: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapCX, "cx", 8, "Center tile X")
	mapCmd.Flags().IntVar(&flagMapCY, "cy", 8, "Center tile Y")
	mapCmd.Flags().IntVar(&flagMapW, "width", 0, "Region width in tiles (0 = terminal width)")
	mapCmd.Flags().IntVar(&flagMapH, "height", 0, "Region height in tiles (0 = terminal height)")
	mapCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runMap(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		cfg = config.Default()
	}

	width, height := flagMapW, flagMapH
	if width <= 0 || height <= 0 {
		tw, th := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			tw, th = w, h-1
		}
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}

	params := world.Params{
		TileSize:          cfg.World.TileSize,
		ChunkSize:         cfg.World.ChunkSize,
		WorldRadiusChunks: cfg.World.WorldRadiusChunks,
		CacheChunks:       cfg.World.ChunkCache,
	}
	collider := world.NewCollider(world.NewStore(world.NewGenerator(params)))

	screen := core.NewScreen(width, height)
	originTX := flagMapCX - width/2
	originTY := flagMapCY - height/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			attrs := collider.TileAtIndex(originTX+x, originTY+y).Attrs()
			screen.SetCell(x, y, attrs.Rune, attrs.Color)
		}
	}

	fmt.Println(tui.RenderScreen(screen))
}
