package protocol

// Kind names a task or queue role. Task kinds identify the worker itself,
// queue kinds identify its inbound queue.
type Kind string

const (
	KindQTask   Kind = "qtask" // queue micro server
	KindCTask   Kind = "ctask" // client task
	KindServerQ Kind = "qq"    // qtask inbound queue
	KindClientQ Kind = "cq"    // ctask inbound queue
)

// Command is the first field of a wire message.
type Command string

const (
	CmdQueue Command = "queue" // relay to the queue named by the target field
	CmdExit  Command = "exit"  // terminate the receiving server task
)

// Reserved separators. Message fields never contain fieldSep; path tokens
// never contain tokenSep.
const (
	fieldSep = ":"
	tokenSep = "-"
)
