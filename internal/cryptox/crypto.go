// Package cryptox hashes and verifies operator passwords.
//
// New hashes use argon2id with a random per-password salt and are encoded in
// the PHC string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
//
// Unsalted SHA-256 hex digests written by older installations still verify;
// NeedsRehash reports true for them so callers can upgrade on next login.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher hashes passwords for storage and checks candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, encoded string) (bool, error)
	NeedsRehash(encoded string) bool
}

// Params tunes argon2id. MemoryKiB is in kibibytes.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	SaltLen   uint32
	KeyLen    uint32
}

var DefaultParams = Params{Time: 1, MemoryKiB: 64 * 1024, Threads: 4, SaltLen: 16, KeyLen: 32}

type Argon2Hasher struct {
	params Params
}

func NewArgon2Hasher(p Params) *Argon2Hasher {
	if p.SaltLen == 0 {
		p.SaltLen = DefaultParams.SaltLen
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultParams.KeyLen
	}
	if p.Time == 0 {
		p.Time = DefaultParams.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = DefaultParams.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = DefaultParams.Threads
	}
	return &Argon2Hasher{params: p}
}

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)
}

func (h *Argon2Hasher) Hash(password []byte) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := DeriveKey(password, salt, h.params)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.MemoryKiB, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func (h *Argon2Hasher) Verify(password []byte, encoded string) (bool, error) {
	if isLegacyDigest(encoded) {
		sum := sha256.Sum256(password)
		want, _ := hex.DecodeString(strings.ToLower(encoded))
		return subtle.ConstantTimeCompare(sum[:], want) == 1, nil
	}

	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}
	got := DeriveKey(password, salt, p)
	return subtle.ConstantTimeCompare(got, key) == 1, nil
}

// NeedsRehash reports whether encoded is a legacy digest or was produced with
// weaker parameters than the hasher's current ones.
func (h *Argon2Hasher) NeedsRehash(encoded string) bool {
	if isLegacyDigest(encoded) {
		return true
	}
	p, _, _, err := decode(encoded)
	if err != nil {
		return true
	}
	return p.Time < h.params.Time || p.MemoryKiB < h.params.MemoryKiB || p.Threads < h.params.Threads
}

func isLegacyDigest(encoded string) bool {
	if len(encoded) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(encoded)
	return err == nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	var p Params
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, ErrMalformedHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
