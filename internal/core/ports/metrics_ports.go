package ports

// VoteRecorder is notified of every accepted vote.
type VoteRecorder interface {
	VoteRecorded()
}
