package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iov-one/weft"
	gatewayd "github.com/iov-one/weft/cmd/gatewayd/app"
	"github.com/iov-one/weft/commands"
	"github.com/iov-one/weft/commands/server"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/x/gateway"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const flagLogLevel = "log-level"

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		// Local operators always see the full message.
		code, msg := errors.Report(err, true)
		fmt.Fprintf(os.Stderr, "Error %d: %s\n", code, msg)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "gatewayd")

	root := &cobra.Command{
		Use:           "gatewayd",
		Short:         "Cross-chain message gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			opt, err := log.AllowLevel(viper.GetString(flagLogLevel))
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			logger = log.NewFilter(logger, opt)
			return nil
		},
	}
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".gatewayd")
	root.PersistentFlags().String(server.FlagHome, defaultHome, "directory to store files under")
	root.PersistentFlags().String(flagLogLevel, "info", "log level (debug, info, error, none)")

	viper.SetEnvPrefix("GATEWAYD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The logger is replaced once flags are parsed.
	lazy := lazyLogger{get: func() log.Logger { return logger }}

	root.AddCommand(
		initCmd(lazy),
		server.ValidateCmd(gatewayd.Initializers()),
		server.InitChainCmd(gatewayd.GenerateApp, gatewayd.Initializers(), lazy),
		server.DeliverCmd(gatewayd.GenerateApp, gatewayd.TxDecoder, lazy),
		verifierSetHashCmd(),
		statusCmd(lazy),
		testgenCmd(),
		versionCmd(),
	)
	return root
}

func initCmd(logger log.Logger) *cobra.Command {
	cmd := server.InitCmd(gatewayd.GenInitOptions, logger)
	f := cmd.Flags()
	f.String(server.FlagChainID, "", "chain id of the new gateway")
	f.String(gatewayd.FlagDomainSeparator, "", "hex encoded domain separator, defaults to keccak256 of the chain id")
	f.String(gatewayd.FlagOperator, "", "operator address, hex or cond:")
	f.String(gatewayd.FlagVerifierSet, "", "JSON file with the initial verifier set")
	f.Uint64(gatewayd.FlagRetention, 2, "number of previous verifier sets that stay trusted")
	f.Duration(gatewayd.FlagRotationDelay, 24*time.Hour, "minimum delay between two rotations")
	return cmd
}

func verifierSetHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifier-set-hash <file>",
		Short: "Print the hash of a verifier set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := gatewayd.LoadVerifierSet(args[0])
			if err != nil {
				return err
			}
			ds, err := gatewayd.DomainSeparator(
				viper.GetString(server.FlagChainID),
				viper.GetString(gatewayd.FlagDomainSeparator))
			if err != nil {
				return err
			}
			h, err := set.Hash(ds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	cmd.Flags().String(gatewayd.FlagDomainSeparator, "", "hex encoded domain separator, defaults to keccak256 of the chain id")
	cmd.Flags().String(server.FlagChainID, "", "chain id used to derive the domain separator")
	return cmd
}

func statusCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the gateway state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := server.DataFile(viper.GetString(server.FlagHome))
			gw, err := gatewayd.Application(dbPath, logger)
			if err != nil {
				return err
			}
			defer gw.Close()

			status := struct {
				ChainID  string                        `json:"chain_id"`
				Height   int64                         `json:"height"`
				Config   *gateway.Config               `json:"config"`
				Trackers []*gateway.VerifierSetTracker `json:"verifier_sets"`
			}{
				ChainID: gw.ChainID(),
				Height:  gw.Height(),
			}
			if status.ChainID == "" {
				return errors.Wrapf(errors.ErrState, "no gateway initialized at %s, run init-chain", dbPath)
			}
			err = gw.View(func(db weft.ReadOnlyKVStore) error {
				ctrl := gateway.NewController()
				conf, err := ctrl.Config(db)
				if err != nil {
					return err
				}
				status.Config = conf
				status.Trackers, err = ctrl.Trackers(db)
				return err
			})
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func testgenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "testgen [dir]",
		Short: "Write sample encodings of the gateway types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			return commands.TestGenCmd(gatewayd.Examples(), dir)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), weft.Version())
		},
	}
}

// lazyLogger resolves the logger on every call, so commands built before
// flag parsing log with the configured level.
type lazyLogger struct {
	get func() log.Logger
}

func (l lazyLogger) Debug(msg string, keyvals ...interface{}) { l.get().Debug(msg, keyvals...) }
func (l lazyLogger) Info(msg string, keyvals ...interface{})  { l.get().Info(msg, keyvals...) }
func (l lazyLogger) Error(msg string, keyvals ...interface{}) { l.get().Error(msg, keyvals...) }

func (l lazyLogger) With(keyvals ...interface{}) log.Logger {
	return lazyLogger{get: func() log.Logger { return l.get().With(keyvals...) }}
}
