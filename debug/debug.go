package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Source   bool
	Output   bool
	Pipeline bool
	Hook     bool
	Path     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Source = boolEnv("XNODE_DEBUG_SOURCE")
	d.Output = boolEnv("XNODE_DEBUG_OUTPUT")
	d.Pipeline = boolEnv("XNODE_DEBUG_PIPELINE")
	d.Hook = boolEnv("XNODE_DEBUG_HOOK")
	d.Path = boolEnv("XNODE_DEBUG_PATH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Source() bool {
	return d.Source
}
func Output() bool {
	return d.Output
}
func Pipeline() bool {
	return d.Pipeline
}
func Hook() bool {
	return d.Hook
}
func Path() bool {
	return d.Path
}
