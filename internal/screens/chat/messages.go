package chat

import "github.com/hmaeda/campdoc/internal/flow"

// diagnoseDoneMsg is sent when a guided traversal finishes.
type diagnoseDoneMsg struct {
	Result  flow.Result
	Outcome flow.Outcome
}

// consultDoneMsg is sent when the advisor produces a reply.
type consultDoneMsg struct {
	Reply string
}
