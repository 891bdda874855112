package hibp

import (
	"checkmypass/config"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"golang.org/x/crypto/md4"
)

// Mode selects the digest the range API is queried with.
type Mode string

const (
	ModeSHA1 Mode = "sha1"
	ModeNTLM Mode = "ntlm"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSHA1, ModeNTLM:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown hash mode %q", s)
}

// HashLength is the length of the hex digest for the mode.
func (m Mode) HashLength() int {
	if m == ModeNTLM {
		return config.NTLM_HASH_LENGTH
	}
	return config.SHA1_HASH_LENGTH
}

// Digest returns the uppercase hex digest of password. Anything other than
// ModeNTLM hashes with SHA-1.
func (m Mode) Digest(password string) string {
	if m == ModeNTLM {
		return ntlmHash(password)
	}
	return fmt.Sprintf("%X", sha1.Sum([]byte(password)))
}

// Split computes the SHA-1 digest of password and returns the prefix sent
// to the range API and the suffix that stays local.
func Split(password string) (prefix, suffix string) {
	return ModeSHA1.Split(password)
}

func (m Mode) Split(password string) (prefix, suffix string) {
	hash := m.Digest(password)
	return hash[:config.HASH_PREFIX_LENGTH], hash[config.HASH_PREFIX_LENGTH:]
}

// ntlmHash is MD4 over the UTF-16LE encoding of the password. Invalid UTF-8
// is encoded as U+FFFD.
func ntlmHash(password string) string {
	units := utf16.Encode([]rune(password))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	h := md4.New()
	h.Write(buf)
	return fmt.Sprintf("%X", h.Sum(nil))
}
