// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/cmd/uwuify/commands"
	"github.com/walteh/uwuify/cmd/uwuify/opts"
	"github.com/walteh/uwuify/pkg/config"
	"github.com/walteh/uwuify/pkg/hook"
	"github.com/walteh/uwuify/pkg/log"
)

// newRootCmd builds the command tree around o. Dependencies are created in
// PersistentPreRunE, once flags are parsed; callers release them with closeRootOpts.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uwuify",
		Short: "Deterministically uwuify text",
		Long: `uwuify rewrites text with seeded, repeatable substitutions.
Mentions and URIs are left alone, and configured edge-case words are
protected from the transform.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), o.Debug)
			cmd.SetContext(ctx)

			if err := initRootOpts(ctx, o, cmd.OutOrStdout()); err != nil {
				return errors.Errorf("initializing: %w", err)
			}
			return nil
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewTransformCmd(o),
		commands.NewTestCmd(o),
		commands.NewRulesCmd(o),
		commands.NewBatchCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".uwuify.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging attaches a zerolog logger and a console logger to ctx
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	ctx = zl.WithContext(ctx)

	return log.NewContext(ctx, log.New(w, level))
}

// initRootOpts loads config, opens the store and starts the plugin
func initRootOpts(ctx context.Context, o *opts.RootOpts, out io.Writer) error {
	cfg, err := config.LoadOrDefault(ctx, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	s, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}

	o.Config = cfg
	o.Store = s
	o.Transformer = cfg.Transformer()
	o.Dispatcher = hook.NewDispatcher()
	o.Plugin = hook.NewPlugin(o.Dispatcher, o.Transformer, s, cfg.ReservedChannel)
	o.UserLogger = log.NewUserLogger(ctx).WithWriter(out)

	if err := o.Plugin.Start(ctx); err != nil {
		s.Close()
		return errors.Errorf("starting plugin: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("initialized")
	return nil
}

func closeRootOpts(o *opts.RootOpts) error {
	if o.Plugin != nil {
		o.Plugin.Stop()
	}
	if o.Store != nil {
		if err := o.Store.Close(); err != nil {
			return errors.Errorf("closing store: %w", err)
		}
	}
	return nil
}
