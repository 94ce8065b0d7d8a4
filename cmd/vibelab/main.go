package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
	"github.com/san-kum/vibelab/internal/experiment"
	"github.com/san-kum/vibelab/internal/export"
	"github.com/san-kum/vibelab/internal/viz"
)

var (
	configFile string
	preset     string
	overrides  map[string]string
	render     string
	outPath    string
	plotWidth  int
	plotHeight int
	theme      string
	verbose    bool
	// Example-specific
	animate bool
	modes   int
)

// main registers one command per example plus list and presets, and exits
// with status 1 when the command fails.
func main() {
	registry := experiment.NewRegistry()

	rootCmd := &cobra.Command{
		Use:          "vibelab",
		Short:        "closed-form mechanical vibration lab",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			log.SetLevel(log.InfoLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return viz.SetTheme(theme)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringToStringVar(&overrides, "set", nil, "override a parameter, e.g. --set damping=4")
	pf.StringVar(&render, "render", "terminal", "renderer: terminal, png, svg or html")
	pf.StringVarP(&outPath, "out", "o", "", "output file for png, svg and html")
	pf.IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width (terminal columns or image pixels)")
	pf.IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height (terminal rows or image pixels per panel)")
	pf.StringVar(&theme, "theme", viz.ThemeDefault.Name, "terminal theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	for _, ex := range registry.List() {
		exCmd := &cobra.Command{
			Use:   ex.Name,
			Short: ex.Description,
			Args:  cobra.NoArgs,
			RunE:  runExample(ex),
		}
		switch ex.Name {
		case "oscillator":
			exCmd.Flags().BoolVar(&animate, "animate", false, "replay the response as a growing trace")
		case "cable":
			exCmd.Flags().IntVar(&modes, "modes", 1, "overlay modes 1..n")
		}
		rootCmd.AddCommand(exCmd)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tPRESETS")
			for _, ex := range registry.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ex.Name, ex.Description, strings.Join(config.ListPresets(ex.Name), ", "))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [example]",
		Short: "list available presets for an example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for example: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runExample(ex experiment.Example) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(ex.Name)
		if err != nil {
			return err
		}

		params, err := parseOverrides(overrides)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("modes") {
			params["modes"] = float64(modes)
		}

		exp := experiment.New(ex, cfg, params)
		fig, err := exp.Run(cmd.Context())
		if err != nil {
			return err
		}

		plotCfg := resolvePlot(cmd, exp.Config().Plot)
		if animate {
			fps := exp.Config().Oscillator.FPS
			if v, ok := params["fps"]; ok {
				fps = int(v)
			}
			return viz.Animate(fig.Panels[0], fps, viz.Options{Width: plotCfg.Width, Height: plotCfg.Height})
		}
		return renderFigure(cmd, fig, plotCfg)
	}
}

// loadConfig layers defaults, the named preset and the config file, in
// that order.
func loadConfig(example string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(example, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (available: %s)",
				preset, example, strings.Join(config.ListPresets(example), ", "))
		}
		log.WithFields(log.Fields{"example": example, "preset": preset}).Debug("Preset loaded")
	}
	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		log.WithField("path", configFile).Debug("Config file loaded")
	}
	return cfg, nil
}

// parseOverrides converts --set values to numbers.
func parseOverrides(raw map[string]string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for name, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("--set %s=%s: %w", name, s, err)
		}
		params[strings.ToLower(strings.TrimSpace(name))] = v
	}
	return params, nil
}

// resolvePlot lets explicit flags win over the config file.
func resolvePlot(cmd *cobra.Command, pc config.PlotConfig) config.PlotConfig {
	flags := cmd.Flags()
	if flags.Changed("render") || pc.Render == "" {
		pc.Render = render
	}
	if flags.Changed("out") {
		pc.Output = outPath
	}
	if flags.Changed("width") {
		pc.Width = plotWidth
	}
	if flags.Changed("height") {
		pc.Height = plotHeight
	}
	return pc
}

func renderFigure(cmd *cobra.Command, fig *dynamo.Figure, pc config.PlotConfig) error {
	if pc.Render == "terminal" {
		return viz.Plot(os.Stdout, fig, viz.Options{Width: pc.Width, Height: pc.Height})
	}

	format, err := export.ParseFormat(pc.Render)
	if err != nil {
		return err
	}
	path := pc.Output
	if path == "" {
		path = export.DefaultPath(fig, format)
	}

	// Image sizes come from explicit flags only.
	var opts export.Options
	if cmd.Flags().Changed("width") {
		opts.Width = pc.Width
	}
	if cmd.Flags().Changed("height") {
		opts.PanelHeight = pc.Height
	}

	if err := export.Save(path, fig, format, opts); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "format": format}).Info("Figure written")
	return nil
}
