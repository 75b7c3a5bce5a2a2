package server

import (
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/app"
	"github.com/iov-one/weft/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// FlagHome is the viper key of the directory holding all gateway files.
	FlagHome = "home"
	// FlagChainID is the viper key of the chain id written to a new
	// genesis file.
	FlagChainID = "chain-id"
)

// GenOptions can parse command-line and flag to generate default
// app_state for the genesis file. This is application-specific.
type GenOptions func(args []string) (weft.Options, error)

// GenesisFile returns the genesis file location under the home directory.
func GenesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will initialize the genesis file with the app_state produced by
// gen. An existing genesis file is never overwritten.
func InitCmd(gen GenOptions, logger log.Logger) *cobra.Command {
	cmd := initCmd{
		gen:    gen,
		logger: logger,
	}
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize genesis file",
		RunE:  cmd.run,
	}
}

type initCmd struct {
	gen    GenOptions
	logger log.Logger
}

func (c initCmd) run(cmd *cobra.Command, args []string) error {
	genFile := GenesisFile(viper.GetString(FlagHome))
	if fileExists(genFile) {
		c.logger.Info("Found genesis file", "path", genFile)
		return nil
	}

	chainID := viper.GetString(FlagChainID)
	if !weft.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	options, err := c.gen(args)
	if err != nil {
		return err
	}
	gen := app.Genesis{
		ChainID:     chainID,
		GenesisTime: time.Now().UTC().Truncate(time.Second),
		AppState:    options,
	}

	if err := os.MkdirAll(filepath.Dir(genFile), 0755); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := app.SaveGenesis(genFile, gen); err != nil {
		return err
	}
	c.logger.Info("Generated genesis file", "path", genFile, "chain_id", chainID)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}
