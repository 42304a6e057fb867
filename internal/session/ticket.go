package session

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TicketClaims binds the public values exchanged during a handshake to
// a signed, time-bounded ticket. It deliberately carries no permission
// beyond "this exchange happened"; it is not a capability or
// authorization token.
type TicketClaims struct {
	jwt.RegisteredClaims
	LocalPublic string `json:"local_pub"`
	PeerPublic  string `json:"peer_pub"`
}

// IssueTicket signs a TicketClaims binding the two exchanged public
// values using HS256, keyed by a sub-key derived from the shared
// secret via HardenedSessionKey rather than the secret itself. HS256 is
// a MAC, not a signature scheme, so issuing tickets this way does not
// reintroduce the asymmetric signing the core deliberately leaves out.
func IssueTicket(secret, localPublic, peerPublic []byte, ttl time.Duration) (string, error) {
	macKey, err := HardenedSessionKey(secret, "curve25519lens-ticket")
	if err != nil {
		return "", fmt.Errorf("session: derive ticket key: %w", err)
	}

	now := time.Now()
	claims := TicketClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		LocalPublic: hex.EncodeToString(localPublic),
		PeerPublic:  hex.EncodeToString(peerPublic),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(macKey)
	if err != nil {
		return "", fmt.Errorf("session: sign ticket: %w", err)
	}
	return signed, nil
}

// VerifyTicket parses and validates a ticket issued by IssueTicket
// against the same shared secret, rejecting any token not signed with
// HS256 so a verifier can never be tricked into accepting an
// attacker-chosen algorithm.
func VerifyTicket(secret []byte, ticket string) (*TicketClaims, error) {
	macKey, err := HardenedSessionKey(secret, "curve25519lens-ticket")
	if err != nil {
		return nil, fmt.Errorf("session: derive ticket key: %w", err)
	}

	claims := &TicketClaims{}
	_, err = jwt.ParseWithClaims(ticket, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("session: unexpected signing method %v", t.Header["alg"])
		}
		return macKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("session: verify ticket: %w", err)
	}
	return claims, nil
}
