// Package users stores app accounts and serves /register and /login.
//
// Passwords are hashed with bcrypt. A successful login returns the bridge's
// shared secret as the token; the secret is system-wide and does not depend
// on the user.
package users
