package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/config"
)

// ConfigOptions names an explicit config file.
type ConfigOptions struct {
	Path string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "config", "",
		"Config file to read instead of searching for .quickadb.")
}

// Load reads the config named by --config, or searches the default paths.
func (o *ConfigOptions) Load() (*config.Config, error) {
	if o.Path != "" {
		return config.LoadFile(o.Path)
	}
	return config.Load()
}
