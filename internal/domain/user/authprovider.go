package user

import "golang.org/x/crypto/bcrypt"

// AuthProvider turns a password into its stored form and checks a
// login attempt against it. The ledger contract never changes; only
// the provider does.
type AuthProvider interface {
	Store(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainProvider keeps passwords verbatim and compares by exact string
// equality. Existing users files rely on this, so it is the default.
type PlainProvider struct{}

func (PlainProvider) Store(password string) (string, error) { return password, nil }

func (PlainProvider) Verify(stored, password string) bool { return stored == password }

// BcryptProvider hashes new passwords with bcrypt. Existing plaintext
// records are not migrated; they simply fail verification against a
// different scheme.
type BcryptProvider struct{}

func (BcryptProvider) Store(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptProvider) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// ProviderFor maps the configured auth scheme to a provider, falling
// back to plain.
func ProviderFor(scheme string) AuthProvider {
	if scheme == "bcrypt" {
		return BcryptProvider{}
	}
	return PlainProvider{}
}
