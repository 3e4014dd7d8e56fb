package config

import (
	_ "embed"
)

//go:embed defaults/ztype.yaml
var defaultZTypeYAML []byte

// DefaultZTypeConfig returns the default ZType configuration.
// It matches defaults/ztype.yaml and is used if the embedded file is unreadable.
func DefaultZTypeConfig() ZTypeConfig {
	return ZTypeConfig{
		Canvas: ZTypeCanvas{
			Width:           800,
			Height:          600,
			BottomThreshold: 605,
		},
		Words: ZTypeWords{
			Length:        6,
			InitialCount:  3,
			SpawnInterval: 20,
			SpawnMargin:   100,
			Alphabet:      "abcdefghijklmnopqrstuvwxyz",
		},
		TickRate: 30,
	}
}
