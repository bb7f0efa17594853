package cli

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cityweather/config"
	"cityweather/display"
	"cityweather/manager"
	"cityweather/tui"
)

// Factory builds the lookup from the final configuration (after flags).
type Factory func(config config.Config, logger *log.Logger) (manager.Weather, error)

func New(cfg config.Config, factory Factory) (*cobra.Command, error) {
	var (
		interactive bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:          "weather [city]",
		Short:        "CLI application for getting the current weather of a city",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			var logger *log.Logger
			if verbose {
				logger = log.New(cmd.ErrOrStderr(), "weather: ", log.LstdFlags)
			}

			weather, err := factory(cfg, logger)
			if err != nil {
				return err
			}

			city := strings.Join(args, " ")

			if interactive || len(args) == 0 {
				return tui.Run(cmd.Context(), weather, city)
			}

			state := display.FromLookup(weather.Get(cmd.Context(), city))

			cmd.Printf("TEMP\t %s\n", state.Temperature)
			cmd.Printf("ICON\t %s\n", state.Emoji)
			cmd.Printf("DESC\t %s\n", state.Description)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&interactive, "interactive", "i", false, "start the interactive terminal UI")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every lookup to stderr")
	flags.StringVar(&cfg.Provider.APIKey, "api-key", cfg.Provider.APIKey, "OpenWeatherMap API key")
	flags.StringVar(&cfg.Provider.BaseURL, "base-url", cfg.Provider.BaseURL, "weather endpoint")
	flags.DurationVar(&cfg.Provider.Timeout, "timeout", durationOr(cfg.Provider.Timeout, 10*time.Second), "request timeout")

	return cmd, nil
}

func durationOr(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
