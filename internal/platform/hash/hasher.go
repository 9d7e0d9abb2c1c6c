package hash

// Hasher is the interface for password hashing strategies.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
