package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/telekom/mq-sni/pkg/cli"
	"github.com/telekom/mq-sni/pkg/mqsni/output"
	"github.com/telekom/mq-sni/pkg/sni"
	"github.com/telekom/mq-sni/pkg/system"
)

type Config struct {
	OutputWriter io.Writer
	ErrorWriter  io.Writer
	Input        io.Reader
	Settings     cli.Settings
}

type runtimeState struct {
	settings  cli.Settings
	format    output.Format
	writer    io.Writer
	errWriter io.Writer
	input     io.Reader
	log       *zap.SugaredLogger
	runID     string
	converter *sni.Converter
	channel   string
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		OutputWriter: os.Stdout,
		ErrorWriter:  os.Stderr,
		Input:        os.Stdin,
		Settings:     cli.DefaultSettings(),
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{
		settings:  cfg.Settings,
		writer:    cfg.OutputWriter,
		errWriter: cfg.ErrorWriter,
		input:     cfg.Input,
		log:       zap.NewNop().Sugar(),
	}

	root := &cobra.Command{
		Use:   "mqsni [flags] [--] [CHANNEL]",
		Short: "Convert an IBM MQ channel name to its SNI hostname",
		Long: `Convert an IBM MQ channel name to the SNI hostname a queue manager uses to
select a per-channel certificate. Without CHANNEL the name is read from stdin.

Channel names that match a subcommand (help, version, decode, completion) are
converted with --channel NAME or after a "--" separator.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.errWriter == nil {
				rt.errWriter = os.Stderr
			}
			if rt.input == nil {
				rt.input = os.Stdin
			}
			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}

			format, err := output.ParseFormat(rt.settings.Output)
			if err != nil {
				return err
			}
			rt.format = format

			rt.log, rt.runID = system.NewRunLogger(system.SetupLogger(rt.settings.Verbose, rt.errWriter))
			rt.settings.Print(rt.log)

			mode := sni.ModeStrict
			if rt.settings.LegacyValidation {
				mode = sni.ModeLegacy
			}
			rt.converter = sni.NewConverter(sni.WithMode(mode), sni.WithLogger(rt.log))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			src, err := rt.source(args)
			if err != nil {
				return err
			}
			return rt.convert(src)
		},
	}

	root.PersistentFlags().StringVarP(&rt.settings.Output, "output", "o", rt.settings.Output, "Output format: text, json, yaml")
	root.PersistentFlags().BoolVarP(&rt.settings.Verbose, "verbose", "v", rt.settings.Verbose, "Enable debug logging on stderr")
	root.PersistentFlags().BoolVar(&rt.settings.LegacyValidation, "legacy-validation", rt.settings.LegacyValidation,
		"Only enforce the channel name character set for single character names")

	root.Flags().StringVar(&rt.channel, "channel", "", "Channel name to convert, for names that match a subcommand")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewDecodeCommand(),
		NewCompletionCommand(),
		NewVersionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer != nil {
		return rt.writer
	}
	return os.Stdout
}

// promptWriter keeps the interactive prompt out of structured output.
func (rt *runtimeState) promptWriter() io.Writer {
	if rt.format == output.FormatText {
		return rt.Writer()
	}
	if rt.errWriter != nil {
		return rt.errWriter
	}
	return os.Stderr
}
