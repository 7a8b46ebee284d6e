package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/patterns/app"
	"github.com/kilianp07/patterns/config"
	"github.com/kilianp07/patterns/infra/logger"
	"github.com/kilianp07/patterns/infra/metrics"
)

type rootOptions struct {
	cfgPath     string
	metricsAddr string
	cfg         *config.Config
	svc         *app.Service
}

// Execute runs the CLI.
func Execute() error {
	root, opts := newRootCmd()
	return execute(root, opts)
}

// execute runs root and always releases what setup acquired, including when
// the command itself failed.
func execute(root *cobra.Command, opts *rootOptions) error {
	err := root.Execute()
	if terr := opts.teardown(); err == nil {
		err = terr
	}
	return err
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "patterns",
		Short:        "Select interchangeable behaviors by key",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during shell sessions")

	root.AddCommand(
		newFurnitureCmd(opts),
		newGUICmd(opts),
		newProductCmd(opts),
		newCalcCmd(opts),
		newKeysCmd(opts),
		newShellCmd(opts),
	)
	return root, opts
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.metricsAddr != "" {
		cfg.Metrics.Address = o.metricsAddr
	}
	if err := logger.Setup(cfg.Logging); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	o.cfg, o.svc = cfg, svc
	return nil
}

func (o *rootOptions) teardown() error {
	var err error
	if o.svc != nil {
		err = o.svc.Close()
		o.svc = nil
	}
	if lerr := logger.Close(); err == nil {
		err = lerr
	}
	return err
}

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read commands from stdin, keeping the active strategy between lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if addr := opts.cfg.Metrics.Address; addr != "" {
				go serveMetrics(ctx, addr)
			}
			return opts.svc.RunShell(ctx, cmd.InOrStdin())
		},
	}
}

func serveMetrics(ctx context.Context, addr string) {
	if err := metrics.StartPromServer(ctx, addr); err != nil {
		logger.New("main").Errorf("prom server: %v", err)
	}
}
