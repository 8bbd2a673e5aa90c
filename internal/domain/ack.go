package domain

import "encoding/json"

// AckStatus is the status reported for every message notification.
const AckStatus = "ready_for_messages"

// ackBody keeps the key/value spacing the platform integration has always
// received for AckStatus.
var ackBody = []byte(`{"status": "` + AckStatus + `"}`)

// Ack is the acknowledgment returned for incoming message notifications.
type Ack struct {
	Status string `json:"status"`
}

// Body renders the acknowledgment. Statuses other than AckStatus are plain
// JSON-encoded.
func (a Ack) Body() []byte {
	if a.Status == AckStatus {
		return ackBody
	}
	b, _ := json.Marshal(a)
	return b
}
