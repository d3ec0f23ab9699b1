// Package keyfile stores generated key pairs as YAML bundles on disk.
package keyfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/validators"

	"gopkg.in/yaml.v3"
)

// Bundle is the on-disk form of a generated key pair
type Bundle struct {
	ID         string    `yaml:"id"`
	PublicKey  string    `yaml:"public_key"`
	PrivateKey string    `yaml:"private_key"`
	Modulus    uint64    `yaml:"modulus"`
	Created    time.Time `yaml:"created"`
}

// FromGenerated builds a bundle from a key generation result
func FromGenerated(kp *textbook.GeneratedKeyPair) *Bundle {
	return &Bundle{
		ID:         kp.KeyPairID,
		PublicKey:  kp.PublicKey.String(),
		PrivateKey: kp.PrivateKey.String(),
		Modulus:    kp.Modulus,
		Created:    kp.DateTimeCreated.UTC(),
	}
}

// Key returns the public or private key string of the bundle
func (b *Bundle) Key(keyType string) (string, error) {
	switch keyType {
	case textbook.KeyTypePublic:
		return b.PublicKey, nil
	case textbook.KeyTypePrivate:
		return b.PrivateKey, nil
	default:
		return "", fmt.Errorf("unknown key type %q", keyType)
	}
}

func (b *Bundle) validate() error {
	if !validators.IsKeyString(b.PublicKey) {
		return fmt.Errorf("%w: public_key", textbook.ErrMalformedKey)
	}
	if !validators.IsKeyString(b.PrivateKey) {
		return fmt.Errorf("%w: private_key", textbook.ErrMalformedKey)
	}
	return nil
}

// Save writes the bundle to path with owner-only permissions
func Save(path string, b *Bundle) error {
	if err := b.validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal key file: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", path, err)
	}
	return nil
}

// Load reads and checks a bundle written by Save
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse key file %s: %w", path, err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
