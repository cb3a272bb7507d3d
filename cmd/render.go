package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/domain/batch"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <dir>",
	Short: "Write annotated PNG copies of every image in a directory",
	Long: `Render draws the landmarks and connecting lines of every image in dir
and writes <out>/<base>.png. Images without a landmark file are rendered
bare. Failures are reported per image and do not stop the batch.

Example:
  landmark-editor render ./faces --out ./faces/rendered --workers 8
  landmark-editor render ./faces --native --crop 40`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("out", "", "Output directory (default <dir>/rendered)")
	renderCmd.Flags().Int("workers", 0, "Parallel workers (0 keeps the config value)")
	renderCmd.Flags().Bool("labels", false, "Draw landmark indices next to markers")
	renderCmd.Flags().Int("crop", -1, "Crop to the landmark box grown by N pixels (-1 disables)")
	renderCmd.Flags().Bool("native", false, "Render at native resolution instead of the display bound")
	renderCmd.Flags().String("colors", "", "Marker colours: group or index (empty keeps the config value)")
	renderCmd.Flags().Float64("line-width", 0, "Line width in pixels (0 keeps the config value)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	dir := args[0]
	outDir := mustGetString(cmd, "out")
	if outDir == "" {
		outDir = filepath.Join(dir, "rendered")
	}
	if w := mustGetInt(cmd, "workers"); w > 0 {
		cfg.RenderWorkers = w
	}
	if c := mustGetString(cmd, "colors"); c != "" {
		cfg.ColorMode = c
	}
	if lw := mustGetFloat64(cmd, "line-width"); lw > 0 {
		cfg.LineWidth = lw
	}
	_ = cfg.Validate()

	scheme, err := landmark.LoadScheme(cfg.Scheme)
	if err != nil {
		return fmt.Errorf("failed to load scheme: %w", err)
	}
	imgs, err := batch.ListImages(dir, cfg.Extensions)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}
	if len(imgs) == 0 {
		fmt.Println("No images found.")
		return nil
	}

	r := &batch.Renderer{
		Scheme:      scheme,
		Style:       render.NewStyle(cfg.MarkerSize, cfg.ColorMode),
		Bound:       image.Pt(cfg.DisplayWidth, cfg.DisplayHeight),
		LineWidth:   cfg.LineWidth,
		ShowLabels:  mustGetBool(cmd, "labels") || cfg.ShowLabels,
		Suffix:      cfg.LandmarkSuffix,
		CropPadding: mustGetInt(cmd, "crop"),
		Workers:     cfg.RenderWorkers,
		Logger:      logger,
		Progress:    newProgressBar(len(imgs), "Rendering"),
	}
	if mustGetBool(cmd, "native") {
		r.Bound = image.Point{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := r.RenderAll(ctx, imgs, outDir)
	if err != nil {
		return err
	}

	var missing int
	for _, res := range results {
		if res.Missing && res.Err == nil {
			missing++
		}
	}
	failed := batch.Failed(results)
	fmt.Printf("\nRendered %d image(s) to %s (%d without landmarks, %d failed)\n",
		len(results)-len(failed), outDir, missing, len(failed))
	for _, f := range failed {
		fmt.Printf("  - %s: %v\n", f.Image, f.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d image(s) failed", len(failed))
	}
	return nil
}

func newProgressBar(count int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)
}
