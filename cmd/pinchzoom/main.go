// Command pinchzoom opens gesture-driven image viewers and replays gesture
// scripts against them.
package main

import "github.com/phanxgames/pinchzoom/cmd/pinchzoom/cmd"

func main() {
	cmd.Execute()
}
