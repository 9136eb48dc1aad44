package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vk/axisdefaults/internal/app"
	"github.com/vk/axisdefaults/internal/axis"
	"github.com/vk/axisdefaults/internal/encode"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: 2, Message: err.Error()}
}

// globalOptions are the flags shared by every command.
type globalOptions struct {
	logLevel  string
	logFormat string
	noColor   bool
}

// Execute runs the command line with args. Help output and resolved layouts
// go to outW; logs and warnings go to errW.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "axisdefaults",
		Short: "Resolve plot axis layouts into fully populated configurations",
		Long: `axisdefaults fills in every attribute of the cartesian axes of a plot
layout: types inferred from the plotted data, ranges cleaned, ticks, grid
lines and range breaks defaulted, exactly as a renderer would see them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured warnings.")

	root.AddCommand(
		newResolveCommand(opts, outW, errW),
		newSchemaCommand(outW),
		newBridgeCommand(opts, outW, errW),
	)
	return root
}

func newResolveCommand(opts *globalOptions, outW, errW io.Writer) *cobra.Command {
	var (
		format   string
		output   string
		editable bool
	)
	cmd := &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Resolve every axis of the layouts found under PATH",
		Long: `Resolve loads .hcl, .json, .yaml, .yml and .toml layouts from the given
files and directories, merges them in order and writes the resolved axes
and traces.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(errors.New("resolve requires at least one layout path"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				InputPaths:   args,
				OutputFormat: encode.Format(strings.ToLower(format)),
				OutputPath:   output,
				Editable:     editableOverride(cmd, editable),
				LogLevel:     opts.logLevel,
				LogFormat:    opts.logFormat,
			})
			if err != nil {
				return usageError(err)
			}

			a := app.NewApp(outW, errW, cfg, nil).WithWarner(newWarnPrinter(errW, opts.noColor))
			_, err = a.Resolve(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(encode.JSON), fmt.Sprintf("Output format. Options: %s.", formatList()))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the resolved layout to this file instead of stdout.")
	cmd.Flags().BoolVar(&editable, "editable", false, "Override the layouts' editable flag (placeholder titles).")
	return cmd
}

func newBridgeCommand(opts *globalOptions, outW, errW io.Writer) *cobra.Command {
	var (
		url        string
		namespace  string
		timeout    string
		insecure   bool
		healthPort int
		editable   bool
	)
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Answer relayout requests from a plot server over socket.io",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			connectTimeout, err := parseTimeout(timeout)
			if err != nil {
				return usageError(err)
			}
			cfg, err := app.NewConfig(app.Config{
				Editable:           editableOverride(cmd, editable),
				LogLevel:           opts.logLevel,
				LogFormat:          opts.logFormat,
				HealthcheckPort:    healthPort,
				BridgeURL:          url,
				BridgeNamespace:    namespace,
				BridgeTimeout:      connectTimeout,
				InsecureSkipVerify: insecure,
			})
			if err != nil {
				return usageError(err)
			}
			if cfg.BridgeURL == "" {
				return usageError(errors.New("bridge requires --url"))
			}

			a := app.NewApp(outW, errW, cfg, nil).WithWarner(newWarnPrinter(errW, opts.noColor))
			return a.RunBridge(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Plot server URL, e.g. http://localhost:3000/socket.io/.")
	cmd.Flags().StringVar(&namespace, "namespace", "/", "Socket.io namespace.")
	cmd.Flags().StringVar(&timeout, "timeout", "15s", "How long to wait for the initial connection.")
	cmd.Flags().BoolVar(&insecure, "insecure-skip-verify", false, "Skip TLS certificate verification.")
	cmd.Flags().IntVar(&healthPort, "healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	cmd.Flags().BoolVar(&editable, "editable", false, "Override the requests' editable flag (placeholder titles).")
	return cmd
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", s)
	}
	return d, nil
}

// editableOverride returns nil unless --editable was given explicitly.
func editableOverride(cmd *cobra.Command, editable bool) *bool {
	if !cmd.Flags().Changed("editable") {
		return nil
	}
	return &editable
}

func formatList() string {
	names := make([]string, 0, len(encode.Formats()))
	for _, f := range encode.Formats() {
		names = append(names, "'"+string(f)+"'")
	}
	return strings.Join(names, ", ")
}

// newWarnPrinter prints resolution warnings to w, in yellow unless noColor.
func newWarnPrinter(w io.Writer, noColor bool) axis.Warner {
	label := color.New(color.FgYellow, color.Bold)
	if noColor {
		label.DisableColor()
	}
	return axis.WarnFunc(func(msg string) {
		label.Fprint(w, "warning:")
		fmt.Fprintf(w, " %s\n", msg)
	})
}
