package auth

type Principal int

const (
	ISADMIN Principal = iota
	ISKNOWN
)

const (
	authorizationHeader = "authorization"
)
