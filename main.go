package main

import (
	"log/slog"

	"github.com/soocke/landmark-editor/app"
	"github.com/soocke/landmark-editor/cmd"
	"github.com/soocke/landmark-editor/config"
)

func main() {
	cmd.RegisterEditor(runEditor)
	cmd.Execute()
}

func runEditor(cfg *config.Config, cfgPath string, logger *slog.Logger, path string) error {
	application, err := app.NewApp("Landmark Editor", cfg, cfgPath, logger)
	if err != nil {
		return err
	}
	application.Start(path)
	return nil
}
