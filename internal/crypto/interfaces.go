package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService protects the API token at rest. It knows nothing about the
// network, the database, or the model server. Its only job is to derive keys
// and seal/open token material.
//
// Scheme:
//
//	salt = GenerateSalt()                    (once per saved token)
//	key  = DeriveKey(passphrase, salt)       (Argon2id, in memory only)
//	blob = Seal(token, key)                  (AES-256-GCM, nonce ‖ ciphertext)
type KeyChainService interface {
	// GenerateSalt generates a random 16-byte salt. The salt is not a
	// secret and is stored next to the sealed token.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit sealing key from passphrase and salt via
	// Argon2id. The key exists only in client memory.
	DeriveKey(passphrase string, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-GCM. The returned blob
	// (nonce ‖ ciphertext) is safe to persist: without the key it is
	// indistinguishable from random noise.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns an error if the key
	// is wrong or the blob is corrupted (authentication-tag mismatch).
	Open(blob, key []byte) ([]byte, error)
}
