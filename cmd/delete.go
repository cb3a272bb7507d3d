package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/domain/annotation"
	"github.com/soocke/landmark-editor/domain/batch"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <image>...",
	Short: "Delete images together with their annotation files",
	Long: `Delete removes each image and the files next to it that share its base
name with one of the sibling suffixes (_ldmks.txt and _bbox.txt by default).

Example:
  landmark-editor delete faces/img_003.jpg faces/img_017.jpg --yes`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().Bool("yes", false, "Skip confirmation prompt")
	deleteCmd.Flags().StringSlice("suffix", nil, "Sibling suffixes to delete (default from config)")
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	skipConfirm := mustGetBool(cmd, "yes")
	suffixes := mustGetStringSlice(cmd, "suffix")
	if len(suffixes) == 0 {
		suffixes = cfg.SiblingSuffixes
	}

	var valid []string
	fmt.Println("Files to delete:")
	for _, img := range args {
		if _, err := os.Stat(img); err != nil {
			fmt.Printf("  - WARNING: %s not found (skipping)\n", img)
			continue
		}
		valid = append(valid, img)
		fmt.Printf("  - %s\n", img)
		for _, s := range annotation.Siblings(img, suffixes) {
			if _, err := os.Stat(s); err == nil {
				fmt.Printf("      %s\n", s)
			}
		}
	}
	if len(valid) == 0 {
		return fmt.Errorf("no images to delete")
	}

	// Confirm deletion
	if !skipConfirm {
		fmt.Printf("\nDelete %d image(s)? [y/N]: ", len(valid))
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	errs := batch.DeleteAll(valid, suffixes, newProgressBar(len(valid), "Deleting"), logger)
	fmt.Println()
	for _, e := range errs {
		fmt.Printf("  - %v\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d file(s) could not be deleted", len(errs))
	}
	fmt.Printf("Deleted %d image(s).\n", len(valid))
	return nil
}
