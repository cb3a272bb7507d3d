package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/domain/annotation"
	"github.com/soocke/landmark-editor/domain/batch"
)

var listCmd = &cobra.Command{
	Use:   "list <dir>",
	Short: "List images in navigation order with their landmark counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output as JSON")
	listCmd.Flags().Bool("missing", false, "Only show images without a landmark file")
}

// ListEntry is one row of the list output.
type ListEntry struct {
	Index     int    `json:"index"`
	Image     string `json:"image"`
	Landmarks int    `json:"landmarks"`
	Missing   bool   `json:"missing"`
	Error     string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	imgs, err := batch.ListImages(args[0], cfg.Extensions)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}
	entries := listEntries(imgs, cfg.LandmarkSuffix, mustGetBool(cmd, "missing"))

	if mustGetBool(cmd, "json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tIMAGE\tLANDMARKS")
	for _, e := range entries {
		count := fmt.Sprintf("%d", e.Landmarks)
		switch {
		case e.Error != "":
			count = "error: " + e.Error
		case e.Missing:
			count = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index+1, filepath.Base(e.Image), count)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nTotal: %d images\n", len(imgs))
	return nil
}

func listEntries(imgs []string, suffix string, onlyMissing bool) []ListEntry {
	entries := make([]ListEntry, 0, len(imgs))
	for i, img := range imgs {
		e := ListEntry{Index: i, Image: img}
		pts, err := annotation.Load(annotation.LandmarkPath(img, suffix))
		switch {
		case errors.Is(err, annotation.ErrNotFound):
			e.Missing = true
		case err != nil:
			e.Error = err.Error()
		default:
			e.Landmarks = len(pts)
		}
		if onlyMissing && !e.Missing {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
