package ports

type TokenVerifier interface {
	// Verify validates a bearer token and returns its subject.
	Verify(token string) (string, error)
}

type TokenIssuer interface {
	Issue(subject string) (string, error)
}
