package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/app"
	"github.com/iov-one/weft/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger) (*app.Gateway, error)

// TxDecoder decodes a binary transaction read from a file.
type TxDecoder func(raw []byte) (weft.Tx, error)

// DataFile returns the location of the gateway store under the home
// directory.
func DataFile(home string) string {
	return filepath.Join(home, "data", "gateway.db")
}

// InitChainCmd applies the genesis file of the home directory to a new
// store. A store that was initialized before is left untouched.
func InitChainCmd(gen AppGenerator, init weft.Initializer, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "init-chain",
		Short: "Apply the genesis file to a new gateway store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := viper.GetString(FlagHome)
			genFile := GenesisFile(home)
			genesis, err := app.LoadGenesis(genFile)
			if err != nil {
				return errors.Wrapf(err, "genesis %s", genFile)
			}

			gw, err := gen(home, logger)
			if err != nil {
				return err
			}
			defer gw.Close()

			if chainID := gw.ChainID(); chainID != "" {
				if chainID != genesis.ChainID {
					return errors.Wrapf(errors.ErrState, "store belongs to chain %q", chainID)
				}
				logger.Info("Found initialized gateway", "chain_id", chainID)
				return nil
			}
			if err := gw.InitChain(genesis, init); err != nil {
				return err
			}
			logger.Info("Initialized gateway", "chain_id", genesis.ChainID, "path", DataFile(home))
			return nil
		},
	}
}

// DeliverCmd delivers the binary transaction stored in a file and prints
// the result as JSON.
func DeliverCmd(gen AppGenerator, decode TxDecoder, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "deliver <tx-file>",
		Short: "Deliver a signed transaction to the gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := ioutil.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			tx, err := decode(raw)
			if err != nil {
				return err
			}

			gw, err := gen(viper.GetString(FlagHome), logger)
			if err != nil {
				return err
			}
			defer gw.Close()

			res, err := gw.Deliver(context.Background(), time.Now().UTC(), tx)
			if err != nil {
				return err
			}
			result, err := deliverOutput(gw.Height(), res)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

type eventOutput struct {
	Kind    string `json:"kind"`
	Payload []byte `json:"payload"`
}

type deliverResult struct {
	Height int64         `json:"height"`
	Data   []byte        `json:"data,omitempty"`
	Log    string        `json:"log,omitempty"`
	Events []eventOutput `json:"events,omitempty"`
}

func deliverOutput(height int64, res *weft.DeliverResult) (deliverResult, error) {
	out := deliverResult{Height: height, Data: res.Data, Log: res.Log}
	for _, ev := range res.Events {
		payload, err := ev.Payload.Marshal()
		if err != nil {
			return out, errors.Wrapf(err, "event %s", ev.Kind)
		}
		out.Events = append(out.Events, eventOutput{Kind: ev.Kind, Payload: payload})
	}
	return out, nil
}
