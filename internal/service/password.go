package service

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/bagdasarian/taskflow/internal/config"
	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// NewPasswordHasher returns the hasher registered under name.
func NewPasswordHasher(name string, bcryptCost int) (PasswordHasher, error) {
	switch name {
	case config.HasherBcrypt, "":
		return BcryptHasher{Cost: bcryptCost}, nil
	case config.HasherLegacy:
		return LegacyChecksum{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(digest), nil
}

func (h BcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// LegacyChecksum reproduces the 32-bit shift-add digest of stores written by
// the browser build. It is a checksum, not a password hash: equal inputs
// collide trivially and nothing is salted. Use it only to read such stores.
type LegacyChecksum struct{}

func (LegacyChecksum) Hash(password string) (string, error) {
	return legacyDigest(password), nil
}

func (LegacyChecksum) Verify(digest, password string) bool {
	return digest == legacyDigest(password)
}

// legacyDigest hashes UTF-16 code units with h = h*31 + c in int32 arithmetic
// and renders |h| in lowercase hex.
func legacyDigest(password string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(password)) {
		h = h<<5 - h + int32(c)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return "hashed_" + strconv.FormatInt(abs, 16)
}
