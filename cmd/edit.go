package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soocke/landmark-editor/config"
)

// EditorFunc opens the editor window on path (a file, a directory or "")
// and blocks until it closes.
type EditorFunc func(cfg *config.Config, cfgPath string, logger *slog.Logger, path string) error

var editorFunc EditorFunc

var editCmd = &cobra.Command{
	Use:   "edit [image|dir]",
	Short: "Open the landmark editor window",
	Long: `Open the editor on an image or a directory of images. Without an
argument the last opened directory is used.

Mouse:
  click or drag        move one landmark
  Shift+drag           move the whole connected feature (see group_modifier)

Keys:
  Ctrl+arrows          nudge the selected landmark
  Ctrl+Shift+arrows    nudge its feature
  Ctrl+S               save
  Ctrl+N / PageDown    next image
  Ctrl+P / PageUp      previous image
  Ctrl+Delete          delete image and annotation files`,
	Args: cobra.MaximumNArgs(1),
}

// RegisterEditor installs the window implementation behind the edit
// command. Builds without it are headless.
func RegisterEditor(fn EditorFunc) {
	editorFunc = fn
	rootCmd.AddCommand(editCmd)
	// edit is also the default action of the bare command.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = runEdit
}

func init() {
	editCmd.RunE = runEdit
	editCmd.Flags().Int("width", 0, "Display bound width (0 keeps the config value)")
	editCmd.Flags().Int("height", 0, "Display bound height (0 keeps the config value)")
	editCmd.Flags().String("modifier", "", "Key for group drags: Shift or Control")
	editCmd.Flags().Bool("no-autosave", false, "Do not save when leaving an edited image")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editorFunc == nil {
		return errors.New("this build has no editor window")
	}
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	// The bare root command has no edit flags.
	if cmd == editCmd {
		if w := mustGetInt(cmd, "width"); w > 0 {
			cfg.DisplayWidth = w
		}
		if h := mustGetInt(cmd, "height"); h > 0 {
			cfg.DisplayHeight = h
		}
		if m := mustGetString(cmd, "modifier"); m != "" {
			cfg.GroupModifier = m
		}
		if mustGetBool(cmd, "no-autosave") {
			cfg.AutoSave = false
		}
		_ = cfg.Validate()
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	return editorFunc(cfg, cfgPath, logger, path)
}
