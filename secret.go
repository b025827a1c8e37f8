package codable

import (
	"encoding/base64"
	"fmt"
)

// Secret is a string attribute that is encrypted whenever it is encoded.
type Secret string

// Password is a plaintext password. It is hashed on encode and never written
// out as given.
type Password string

// PasswordHash is what a Password attribute decodes to.
type PasswordHash string

// Verify reports whether password hashes to h under hasher.
func (h PasswordHash) Verify(hasher Hasher, password string) bool {
	return hasher.Verify(string(h), []byte(password)) == nil
}

// Sensitive is a string attribute that is masked when encoded.
type Sensitive string

// Sealed returns a transformer carrying Secret values as base64 ciphertext.
func Sealed(enc Encryptor) Transformer {
	return Func(
		func(s Secret) (string, error) {
			ciphertext, err := enc.Encrypt([]byte(s))
			if err != nil {
				return "", fmt.Errorf("seal: %w", err)
			}
			return base64.StdEncoding.EncodeToString(ciphertext), nil
		},
		func(encoded string) (Secret, error) {
			ciphertext, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return "", fmt.Errorf("base64 decode: %w", err)
			}
			plaintext, err := enc.Decrypt(ciphertext)
			if err != nil {
				return "", fmt.Errorf("open: %w", err)
			}
			return Secret(plaintext), nil
		},
	)
}

// Hashed returns a transformer writing Password values as hashes. Decoding
// yields a PasswordHash; a PasswordHash encodes as itself.
func Hashed(h Hasher) Transformer {
	return func(v any) (any, error) {
		switch x := v.(type) {
		case nil:
			return nil, nil
		case Password:
			return h.Hash([]byte(x))
		case PasswordHash:
			return string(x), nil
		case string:
			return PasswordHash(x), nil
		}
		return nil, fmt.Errorf("%w: got %s, want codable.Password, codable.PasswordHash or string", ErrTransformInput, typeName(v))
	}
}

// Masked returns a transformer writing Sensitive values through m. Decoding
// yields the masked text as Sensitive; the original cannot be recovered.
func Masked(m Masker) Transformer {
	return Func(
		func(s Sensitive) (string, error) {
			return m.Mask(string(s)), nil
		},
		func(s string) (Sensitive, error) {
			return Sensitive(s), nil
		},
	)
}
