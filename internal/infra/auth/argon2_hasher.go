package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonSaltLen = 16
	argonKeyLen  = 32
)

// Argon2Hasher implements service.PasswordHasher using Argon2id.
type Argon2Hasher struct{}

// NewArgon2Hasher creates a new Argon2id password hasher.
func NewArgon2Hasher() service.PasswordHasher {
	return &Argon2Hasher{}
}

// Hash derives an Argon2id hash from the password and encodes it in
// the standard PHC string format.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return encoded, nil
}

// Check verifies a password against a PHC-encoded Argon2id hash.
func (h *Argon2Hasher) Check(password, hash string) bool {
	version, memory, time, threads, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}
	if version != argon2.Version {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1
}

func decodeArgon2Hash(encoded string) (version int, memory uint32, time uint32, threads uint8, salt []byte, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		err = errors.New("malformed argon2id hash")
		return
	}

	if _, scanErr := fmt.Sscanf(parts[2], "v=%d", &version); scanErr != nil {
		err = errors.Wrap(scanErr, "malformed argon2id version")
		return
	}
	if _, scanErr := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); scanErr != nil {
		err = errors.Wrap(scanErr, "malformed argon2id parameters")
		return
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		err = errors.Wrap(err, "malformed argon2id salt")
		return
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		err = errors.Wrap(err, "malformed argon2id key")
		return
	}

	return
}
