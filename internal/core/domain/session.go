package domain

// TurnRole identifies who produced a session turn.
type TurnRole string

// Session turn roles.
const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn is one entry in a chat transcript.
type Turn struct {
	Role TurnRole
	Text string
}

// QuerySession is an ordered chat transcript. It is owned by the
// interaction layer; the query pipeline only supplies the payload
// appended after each question. Sessions are not persisted across
// process restarts.
type QuerySession struct {
	Turns []Turn
}

// Append adds a turn to the transcript.
func (s *QuerySession) Append(role TurnRole, text string) {
	s.Turns = append(s.Turns, Turn{Role: role, Text: text})
}

// Len returns the number of turns.
func (s *QuerySession) Len() int {
	return len(s.Turns)
}
