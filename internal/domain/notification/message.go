package notification

// OutboundEmail is a fully rendered message ready for transport.
// CC recipients receive the same body; delivery to the primary recipient
// decides the overall outcome.
type OutboundEmail struct {
	To       string
	CC       []string
	Subject  string
	HTMLBody string
	TextBody string
}
