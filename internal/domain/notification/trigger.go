package notification

import (
	vo "holzwerk/internal/domain/notification/valueobjects"
)

// TriggerEvent is an inbound business event to dispatch. It lives only for
// the duration of the dispatch call and is never persisted.
type TriggerEvent struct {
	Type      vo.TriggerType
	Recipient string
	Payload   map[string]any
	CCAdmin   bool
}

// DispatchResult is the structured outcome of a dispatch. The dispatcher
// never lets a failure escape as a panic or naked error; every path produces
// one of these.
type DispatchResult struct {
	Success   bool
	MessageID string
	Err       error
}

// Sent builds a successful result carrying the transport message ID.
func Sent(messageID string) DispatchResult {
	return DispatchResult{Success: true, MessageID: messageID}
}

// Failed builds a failure result wrapping the causing error.
func Failed(err error) DispatchResult {
	return DispatchResult{Success: false, Err: err}
}
