package email

import "errors"

// ErrMailerNotInitialized is returned when a send is attempted before
// Initialize has run.
var ErrMailerNotInitialized = errors.New("mailer not initialized")
