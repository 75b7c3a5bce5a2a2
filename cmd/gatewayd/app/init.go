package app

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/commands/server"
	"github.com/iov-one/weft/crypto"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/x/gateway"
	"github.com/spf13/viper"
)

// Viper keys read by GenInitOptions.
const (
	FlagDomainSeparator = "domain-separator"
	FlagOperator        = "operator"
	FlagVerifierSet     = "verifier-set"
	FlagRetention       = "retention"
	FlagRotationDelay   = "rotation-delay"
)

// GenesisParams describes a new gateway deployment.
type GenesisParams struct {
	// DomainSeparator defaults to the keccak256 hash of the chain id.
	DomainSeparator      []byte
	Operator             weft.Address
	VerifierSet          *gateway.VerifierSet
	Retention            uint64
	MinimumRotationDelay time.Duration
}

// GenesisState returns the app_state of a genesis file for the deployment.
func GenesisState(chainID string, p GenesisParams) (weft.Options, error) {
	ds := p.DomainSeparator
	if len(ds) == 0 {
		ds, _ = DomainSeparator(chainID, "")
	}
	conf := &gateway.Config{
		CurrentEpoch:                 1,
		PreviousVerifierSetRetention: p.Retention,
		MinimumRotationDelay:         int64(p.MinimumRotationDelay / time.Second),
		DomainSeparator:              ds,
		Operator:                     p.Operator,
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "gateway configuration")
	}
	if p.VerifierSet == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "verifier set")
	}
	if err := p.VerifierSet.Validate(); err != nil {
		return nil, errors.Wrap(err, "verifier set")
	}

	rawConf, err := json.Marshal(map[string]interface{}{"gateway": conf})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	rawSet, err := json.Marshal(map[string]interface{}{"initial_verifier_set": p.VerifierSet})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return weft.Options{"conf": rawConf, "gateway": rawSet}, nil
}

// GenInitOptions produces the app_state from the viper configuration. The
// verifier set is read from a JSON file.
func GenInitOptions(args []string) (weft.Options, error) {
	p := GenesisParams{
		Retention:            viper.GetUint64(FlagRetention),
		MinimumRotationDelay: viper.GetDuration(FlagRotationDelay),
	}
	chainID := viper.GetString(server.FlagChainID)
	ds, err := DomainSeparator(chainID, viper.GetString(FlagDomainSeparator))
	if err != nil {
		return nil, err
	}
	p.DomainSeparator = ds

	operator, err := ParseAddress(viper.GetString(FlagOperator))
	if err != nil {
		return nil, errors.Wrap(err, "operator")
	}
	p.Operator = operator

	set, err := LoadVerifierSet(viper.GetString(FlagVerifierSet))
	if err != nil {
		return nil, err
	}
	p.VerifierSet = set
	return GenesisState(chainID, p)
}

// DomainSeparator decodes a hex encoded separator. When none is given the
// keccak256 hash of the chain id is used.
func DomainSeparator(chainID, hexSeparator string) ([]byte, error) {
	if hexSeparator == "" {
		h := crypto.Keccak256([]byte(chainID))
		return h[:], nil
	}
	ds, err := hex.DecodeString(hexSeparator)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "domain separator must be hex encoded")
	}
	return ds, nil
}

// ParseAddress decodes a hex address or a "cond:" prefixed condition. An
// empty address is rejected.
func ParseAddress(s string) (weft.Address, error) {
	a, err := weft.ParseAddress(s)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadVerifierSet reads a JSON encoded verifier set.
func LoadVerifierSet(path string) (*gateway.VerifierSet, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "verifier set file")
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var set gateway.VerifierSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "verifier set: %s", err)
	}
	if err := set.Validate(); err != nil {
		return nil, errors.Wrap(err, "verifier set")
	}
	return &set, nil
}
