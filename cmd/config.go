// config.go implements the "isl config" command for configuration management.
//
// Design: a single config file at $XDG_CONFIG_HOME/isl/config.yaml. Keys are
// addressed with dots ("editor.command"); setting a key validates and saves
// the whole file.

package cmd

import (
	"fmt"

	"github.com/jpl-au/isl/internal/config"
	"github.com/jpl-au/isl/internal/log"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  isl config                        # show config
  isl config editor.command         # show editor.command value
  isl config editor.command "code -w"
  isl config document.dir /srv/notes
  isl config limits.max_content 65536

Configuration location: $XDG_CONFIG_HOME/isl/config.yaml
(~/.config/isl/config.yaml when XDG_CONFIG_HOME is unset).`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		// Show all values in key order
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: args[1]})
		}
		fmt.Fprintf(Out(), "%s = %s\n", args[0], args[1])
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
