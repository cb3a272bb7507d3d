package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/domain/annotation"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/ui/images"
)

var showCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "Print the landmarks of an image",
	Long: `Show prints every landmark with its feature group, in display
coordinates for the configured display bound. Use --original for the
coordinates stored in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("original", false, "Print original image coordinates")
	showCmd.Flags().Bool("json", false, "Output as JSON")
}

// ShowPoint is one landmark of the show output.
type ShowPoint struct {
	Index int     `json:"index"`
	Group string  `json:"group"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	img := args[0]
	native, err := images.Size(img)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	pts, err := annotation.Load(annotation.LandmarkPath(img, cfg.LandmarkSuffix))
	if err != nil {
		return err
	}
	scheme, err := landmark.LoadScheme(cfg.Scheme)
	if err != nil {
		return fmt.Errorf("failed to load scheme: %w", err)
	}

	scaler := landmark.NewScaler(image.Pt(cfg.DisplayWidth, cfg.DisplayHeight), native)
	if mustGetBool(cmd, "original") {
		scaler = landmark.Identity(native)
	}
	out := showPoints(landmark.NewModel(scheme, len(pts)), scaler.AllToDisplay(pts))

	if mustGetBool(cmd, "json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}
	size := scaler.DisplaySize()
	fmt.Printf("%s: %d landmarks, image %dx%d, shown at %dx%d (scale %.4f)\n\n",
		img, len(pts), native.X, native.Y, size.X, size.Y, scaler.Factor())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tGROUP\tX\tY")
	for _, p := range out {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\n", p.Index, p.Group, p.X, p.Y)
	}
	return w.Flush()
}

func showPoints(m *landmark.Model, pts []landmark.Point) []ShowPoint {
	out := make([]ShowPoint, len(pts))
	for i, p := range pts {
		group := "-"
		if g, ok := m.GroupOf(i); ok {
			group = g.Name
		}
		out[i] = ShowPoint{Index: i, Group: group, X: p.X, Y: p.Y}
	}
	return out
}
