package domain

// SessionPhase is the per-chat state machine phase.
type SessionPhase string

const (
	// PhaseIdle means the chat has no recording in progress.
	PhaseIdle SessionPhase = "IDLE"
	// PhaseRecording means the chat is appending messages to RecordID.
	PhaseRecording SessionPhase = "RECORDING"
)

// Session is the per-chat conversational state. It is persisted after every
// transition so that a process restart resumes exactly where the chat left off.
// The zero value is a valid Idle session.
type Session struct {
	Phase    SessionPhase
	RecordID int64 // meaningful only when Phase == PhaseRecording
}

// IdleSession returns the state of a chat with no recording in progress.
func IdleSession() Session {
	return Session{Phase: PhaseIdle}
}

// RecordingSession returns the state of a chat recording into recordID.
func RecordingSession(recordID int64) Session {
	return Session{Phase: PhaseRecording, RecordID: recordID}
}

// Recording reports whether the session has a recording in progress.
func (s Session) Recording() bool {
	return s.Phase == PhaseRecording
}
