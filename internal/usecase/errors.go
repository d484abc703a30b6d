package usecase

import "errors"

// ErrInvalidCredentials is returned by LoginUser when the email is unknown
// or the password does not match the stored credential. The two cases are
// indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")
