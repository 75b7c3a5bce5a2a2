package server

import (
	"github.com/iov-one/weft"
	"github.com/iov-one/weft/app"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/spf13/cobra"
)

// ValidateGenesis runs the initializer over every genesis file and
// returns the first failure.
func ValidateGenesis(ini weft.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini weft.Initializer, genesisPath string) error {
	gen, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}
	info, err := weft.NewBlockInfo(0, gen.GenesisTime, gen.ChainID, nil)
	if err != nil {
		return errors.Wrap(err, "genesis chain id")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(gen.AppState, info, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}

// ValidateCmd checks that genesis files can initialize the application.
func ValidateCmd(ini weft.Initializer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <genesis file>...",
		Short: "Validate genesis files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ValidateGenesis(ini, args)
		},
	}
}
