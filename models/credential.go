package models

import "time"

// DefaultCredentialName is the credential row the client uses when no explicit
// name is configured. The library keeps one token per name so several
// backends can be saved side by side.
const DefaultCredentialName = "api-token"

// Credential is an API token stored encrypted at rest. The plaintext token
// never touches the database: only the argon2id salt and the AES-GCM sealed
// ciphertext are persisted.
type Credential struct {
	Name       string    `json:"name"`
	Salt       []byte    `json:"salt"`
	Ciphertext []byte    `json:"ciphertext"`
	CreatedAt  time.Time `json:"created_at"`
}
