// Command ldmk is the headless build of landmark-editor: every batch
// command, no editor window and no Tk runtime.
package main

import "github.com/soocke/landmark-editor/cmd"

func main() {
	cmd.Execute()
}
