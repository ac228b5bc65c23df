package options

import (
	_ "embed"
)

//go:embed defaults/options.yaml
var defaultOptionsYAML []byte
