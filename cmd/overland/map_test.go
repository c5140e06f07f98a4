package main

import "testing"

func TestMapCommandFlags(t *testing.T) {
	// The map command reads the custom tuning path, so it must register the
	// flag itself; it is a play-command flag, not a persistent one.
	for _, name := range []string{"config", "cx", "cy", "width", "height"} {
		if mapCmd.Flags().Lookup(name) == nil {
			t.Errorf("map command is missing the --%s flag", name)
		}
	}
}
