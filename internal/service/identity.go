package service

import "context"

// Identity supplies the acting user for audit metadata. The enclosing
// application owns authentication; this module only records who wrote.
type Identity interface {
	ActingUserID(ctx context.Context) int64
}

// StaticIdentity is an Identity that always reports the same user.
// Deployments without a session system run with the system user.
type StaticIdentity int64

func (s StaticIdentity) ActingUserID(context.Context) int64 {
	return int64(s)
}
