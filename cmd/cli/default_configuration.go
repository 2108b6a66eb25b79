package cli

import (
	"bytes"
	_ "embed"
)

//go:embed default_config.yaml
var defaultConfigurationDocument []byte

// EmbeddedDefaultConfiguration returns a private copy of the built-in configuration document and its format.
// The loader merges it beneath configuration files, environment variables, and flags.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationDocument), configurationTypeConstant
}
