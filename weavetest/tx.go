package weavetest

import "github.com/iov-one/weft"

// Tx represents a weft transaction.
// Transaction represents a single message that is to be processed within this
// transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg weft.Msg
	// Conditions are claimed by the caller. Nothing in the host trusts
	// them, they exercise handlers that must ignore unsigned claims.
	Conditions []weft.Condition
	// Err if set is returned by any method call.
	Err error
}

var _ weft.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weft.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetConditions() []weft.Condition {
	return tx.Conditions
}

// Msg represents a weft message.
// Message is a request processed by weft within a single transaction.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ weft.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
