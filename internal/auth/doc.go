// Package auth holds the password primitives used by the user service.
//
// Passwords are hashed with bcrypt. The work factor comes from
// AUTH_BCRYPT_COST:
//
//	AUTH_BCRYPT_COST=12  # bcrypt cost factor (default)
//
// Hashes are verified with CheckPassword, which reports ErrInvalidPassword
// for any mismatch. Login itself is stateless: a successful check returns
// the user's public profile and no session or token is issued.
package auth
