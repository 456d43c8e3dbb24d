package auth

import (
	"companion-lab/errors"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	phoneScheme      = "phone-argon2id"
	phoneMemory      = 19 * 1024
	phoneIterations  = 2
	phoneParallelism = 1
	phoneSaltLength  = 16
	phoneKeyLength   = 32
)

var countryPrefixes = []string{"+86", "0086"}

// NormalizePhone strips separators and the mainland country code, so that
// "+86 138-0013-8000" and "13800138000" bind the same account.
func NormalizePhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	for _, prefix := range countryPrefixes {
		if rest, found := strings.CutPrefix(phone, prefix); found {
			return rest
		}
	}
	return phone
}

// phoneDigest is the stored form of a bound number:
// "phone-argon2id$v=19$m=19456,t=2,p=1$<salt>$<key>".
type phoneDigest struct {
	version     int
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func (d phoneDigest) String() string {
	return fmt.Sprintf("%s$v=%d$m=%d,t=%d,p=%d$%s$%s", phoneScheme, d.version,
		d.memory, d.iterations, d.parallelism,
		base64.RawStdEncoding.EncodeToString(d.salt),
		base64.RawStdEncoding.EncodeToString(d.key))
}

func parsePhoneDigest(encoded string) (phoneDigest, error) {
	var d phoneDigest
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != phoneScheme {
		return d, errors.ErrInvalidPhoneHash
	}
	if _, err := fmt.Sscanf(parts[1], "v=%d", &d.version); err != nil || d.version != argon2.Version {
		return d, fmt.Errorf("%w: version %q", errors.ErrInvalidPhoneHash, parts[1])
	}
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &d.memory, &d.iterations, &d.parallelism); err != nil {
		return d, fmt.Errorf("%w: %v", errors.ErrInvalidPhoneHash, err)
	}
	var err error
	if d.salt, err = base64.RawStdEncoding.DecodeString(parts[3]); err != nil {
		return d, fmt.Errorf("%w: salt: %v", errors.ErrInvalidPhoneHash, err)
	}
	if d.key, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(d.key) == 0 {
		return d, fmt.Errorf("%w: key", errors.ErrInvalidPhoneHash)
	}
	return d, nil
}

// HashPhone derives the digest stored instead of the number. The number is
// normalized first.
func HashPhone(phone string) (string, error) {
	salt := make([]byte, phoneSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return phoneDigest{
		version:     argon2.Version,
		memory:      phoneMemory,
		iterations:  phoneIterations,
		parallelism: phoneParallelism,
		salt:        salt,
		key:         argon2.IDKey([]byte(NormalizePhone(phone)), salt, phoneIterations, phoneMemory, phoneParallelism, phoneKeyLength),
	}.String(), nil
}

// ComparePhone reports whether phone is the number behind encoded.
// A malformed digest yields errors.ErrInvalidPhoneHash.
func ComparePhone(phone, encoded string) (bool, error) {
	d, err := parsePhoneDigest(encoded)
	if err != nil {
		return false, err
	}
	key := argon2.IDKey([]byte(NormalizePhone(phone)), d.salt, d.iterations, d.memory, d.parallelism, uint32(len(d.key)))
	return subtle.ConstantTimeCompare(d.key, key) == 1, nil
}
