package x

import (
	"context"
	"testing"

	"github.com/iov-one/weft"
	"github.com/iov-one/weft/weavetest"
	"github.com/iov-one/weft/weavetest/assert"
)

func TestChainAuth(t *testing.T) {
	operator := weavetest.NewCondition()
	caller := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	host := &weavetest.CtxAuth{Key: "host"}
	other := &weavetest.CtxAuth{Key: "other"}

	cases := map[string]struct {
		ctx         context.Context
		auth        Authenticator
		wantAll     []weft.Condition
		wantMissing weft.Condition
	}{
		"nothing authenticated": {
			ctx:         context.Background(),
			auth:        ChainAuth(),
			wantMissing: operator,
		},
		"single authenticator": {
			ctx:         context.Background(),
			auth:        ChainAuth(&weavetest.Auth{Signer: operator}),
			wantAll:     []weft.Condition{operator},
			wantMissing: stranger,
		},
		"conditions are combined in order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&weavetest.Auth{Signer: caller},
				&weavetest.Auth{Signer: operator}),
			wantAll:     []weft.Condition{caller, operator},
			wantMissing: stranger,
		},
		"context authenticator": {
			ctx:         host.SetConditions(context.Background(), operator, caller),
			auth:        ChainAuth(host, &weavetest.Auth{}),
			wantAll:     []weft.Condition{operator, caller},
			wantMissing: stranger,
		},
		"context authenticator with another key": {
			ctx:         host.SetConditions(context.Background(), operator),
			auth:        ChainAuth(other),
			wantMissing: operator,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))
			for _, c := range tc.wantAll {
				if !tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Fatalf("want %s authenticated", c)
				}
			}
			if tc.auth.HasAddress(tc.ctx, tc.wantMissing.Address()) {
				t.Fatalf("want %s not authenticated", tc.wantMissing)
			}
		})
	}
}
