package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/questlog/pkg/config"
)

// AddDocumentArgs registers the persistent flags every command shares and
// binds them onto v, so a flag wins over the environment and config file.
func AddDocumentArgs(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.StringP("file", "f", config.DefaultDocument,
		"Quest document, a file path or an http(s) URL.")
	flags.Int(config.KeyYear, config.DefaultYear,
		"Year listed by the month selector.")
	flags.Int(config.KeyWidth, 80,
		"Wrap width for printed timelines.")
	flags.String(config.KeyColor, "auto",
		"Colorize output. One of 'auto', 'always' or 'never'.")
	flags.Bool(config.KeyDebug, false,
		"Log debug output to stderr.")

	_ = v.BindPFlag(config.KeyDocument, flags.Lookup("file"))
	for _, key := range []string{config.KeyYear, config.KeyWidth, config.KeyColor, config.KeyDebug} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

// AddWatchArg registers --watch and binds it onto v.
func AddWatchArg(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().Bool(config.KeyWatch, false,
		"Reload when the document file changes.")
	_ = v.BindPFlag(config.KeyWatch, cmd.Flags().Lookup(config.KeyWatch))
}
