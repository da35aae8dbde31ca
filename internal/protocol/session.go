package protocol

import (
	"math/rand"
	"net/netip"
	"time"

	"github.com/google/uuid"
)

// Session holds the mutable state of one generation run.
// It is not safe for concurrent use.
type Session struct {
	seed       int64
	rand       *rand.Rand
	now        time.Time
	nextLinkID int
	addresses  *AddressGenerator
}

// NewSession creates a session whose identities derive from seed and whose
// poll timestamps all equal now
func NewSession(seed int64, now time.Time) *Session {
	return &Session{
		seed:      seed,
		rand:      rand.New(rand.NewSource(seed)),
		now:       now,
		addresses: NewAddressGenerator(),
	}
}

// Seed returns the seed used for random pairing and identities
func (s *Session) Seed() int64 {
	return s.seed
}

// Now returns the poll timestamp of the run
func (s *Session) Now() time.Time {
	return s.now
}

// NextLinkID returns the next link id, starting at 0
func (s *Session) NextLinkID() int {
	id := s.nextLinkID
	s.nextLinkID++
	return id
}

// NewUUID draws a random identity string from the session's source
func (s *Session) NewUUID() string {
	return uuid.Must(uuid.NewRandomFromReader(s.rand)).String()
}

// NextAddress draws the next address of the session's generator
func (s *Session) NextAddress() (netip.Addr, error) {
	return s.addresses.Next()
}
