/*
Package app links together all the various components
to construct the gatewayd application.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/app"
	"github.com/iov-one/weft/commands/server"
	"github.com/iov-one/weft/errors"
	"github.com/iov-one/weft/store"
	"github.com/iov-one/weft/x"
	"github.com/iov-one/weft/x/gateway"
	"github.com/iov-one/weft/x/sigs"
	"github.com/iov-one/weft/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication of the gateway host. Callers
// are the keys that signed the transaction, and the destination of an
// approved message once one of them is that destination.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticator{}, gateway.CallerAuthenticator{})
}

// Chain returns a chain of decorators, to handle authentication, logging,
// and recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// relayers open sessions and submit signatures without signing
		sigs.NewDecorator().AllowMissingSigs(),
		gateway.NewCallerDecorator(sigs.Authenticator{}),
		// on check, bad tx don't affect state. Gateway.Check discards its
		// own cache as well, the savepoint keeps the stack safe on hosts
		// that pass a committing store to Check.
		utils.NewSavepoint().OnCheck(),
	)
}

// DecodeTx decodes a binary transaction carrying a gateway message.
func DecodeTx(raw []byte) (*app.Tx, error) {
	return app.DecodeTx(raw, gateway.NewMsg)
}

// TxDecoder is DecodeTx for the server commands.
func TxDecoder(raw []byte) (weft.Tx, error) {
	tx, err := DecodeTx(raw)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GenerateApp opens the gateway stored under the home directory.
func GenerateApp(home string, logger log.Logger) (*app.Gateway, error) {
	return Application(server.DataFile(home), logger)
}

// Router returns a router dispatching all gateway messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	gateway.RegisterRoutes(r, authFn)
	return r
}

// Stack wires up a standard router with a standard decorator chain.
func Stack() weft.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Initializers returns the initializers of all extensions.
func Initializers() weft.Initializer {
	return app.ChainInitializers(&gateway.Initializer{})
}

// Application constructs a gateway over the store at dbPath. An empty path
// creates an in memory store.
func Application(dbPath string, logger log.Logger) (*app.Gateway, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	g, err := app.NewGateway(kv, Stack(), logger)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return g, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weft.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return store.MemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return store.OpenCommitStore(dir, name)
}
