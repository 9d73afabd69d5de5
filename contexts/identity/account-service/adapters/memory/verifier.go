package memory

import (
	"context"

	domainerrors "harvest/contexts/identity/account-service/domain/errors"
	"harvest/contexts/identity/account-service/ports"
)

// StaticVerifier maps literal tokens to identities. Test double for the
// hosted-auth verifier.
type StaticVerifier struct {
	Identities map[string]ports.Identity
}

func (v StaticVerifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	identity, ok := v.Identities[token]
	if !ok {
		return ports.Identity{}, domainerrors.ErrTokenInvalid
	}
	return identity, nil
}
