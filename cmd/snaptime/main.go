package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/misalian/snaptime/internal/cliconfig"
	"github.com/misalian/snaptime/internal/timeparse"
	"github.com/misalian/snaptime/internal/watch"
	"github.com/misalian/snaptime/pkg/clock"
	"github.com/misalian/snaptime/pkg/seximal"
)

const helpDescription = `
Display the time of day in Misalian Seximal Units with Kunimunean Extensions.

A day holds 36 lapses of 36 lulls of 36 moments of 6 snaps -- 279936 snaps
in all, each exactly 25/81 of a second. The default extended form reads
lapse:lull:moment.snap in base six, e.g. 20:34:05.0.

With no argument the current time is shown (UTC unless --local). Pass a
time literal to convert it instead; several input formats are accepted,
including 00:34:59, 12:34 AM, 4pm, 6h 45m and full RFC 3339 stamps.
`

var exampleUsage = strings.TrimSpace(`
  snaptime
  snaptime --local --span
  snaptime --basic "8h24m36s"
  snaptime --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var basic, snap, span bool

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "snaptime [when]",
		Short:   "Display the time of day in seximal (base-six) units",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.snaptime/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			// Form flags beat the configured form name.
			switch {
			case span:
				cfg.Form = seximal.FormSpan.String()
			case basic || snap:
				cfg.Form = seximal.FormBasic.String()
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			cliconfig.SetVerbose(cfg.Verbose)
			log = cliconfig.Logger()
			form, _ := seximal.ParseForm(cfg.Form)

			log.Debug().Str("form", cfg.Form).Bool("local", cfg.Local).
				Bool("watch", cfg.Watch).Msg("configuration")

			// A literal time beats the clock.
			if len(args) == 1 {
				if cfg.Watch {
					return fmt.Errorf("--watch cannot be combined with a time literal")
				}
				elapsed, err := timeparse.SinceMidnight(args[0])
				if err != nil {
					return err
				}
				fmt.Println(seximal.FromDuration(elapsed).Render(form))
				return nil
			}

			clk := clock.Real{}

			if cfg.Watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				w := watch.New(cfgFile, form, cfg.Local, clk, os.Stdout, log)
				return w.Run(ctx)
			}

			now := clk.Now()
			if !cfg.Local {
				now = now.UTC()
			}
			fmt.Println(seximal.FromDuration(clock.SinceMidnight(now)).Render(form))
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.snaptime/config.toml)")
	root.Flags().BoolVarP(&basic, "basic", "b", false, "display the seven-digit snapshot form")
	root.Flags().BoolVar(&snap, "snap", false, "alias of --basic")
	root.Flags().BoolVarP(&span, "span", "s", false, "display the three-digit span form")
	root.Flags().BoolVarP(&cfg.Local, "local", "l", cfg.Local, "use system time zone instead of UTC")
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "keep printing, once per snap")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.MarkFlagsMutuallyExclusive("basic", "span")
	root.MarkFlagsMutuallyExclusive("snap", "span")

	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("snaptime")
		os.Exit(1)
	}
}
