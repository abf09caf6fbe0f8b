package protocol

import "strings"

// Message is one wire message: a command, a target queue id, and the path
// the message has traveled so far (one identifier token per hop).
//
// Wire format:
//
//	command:target:tok1-tok2-...
//
// The target of an exit message is empty and never parsed.
type Message struct {
	Command Command
	Target  string
	Path    []string
}

// Exit returns the message that terminates a server task ("exit::").
func Exit() Message { return Message{Command: CmdExit} }

// Encode renders the message in wire format.
func (m Message) Encode() string {
	return string(m.Command) + fieldSep + m.Target + fieldSep + strings.Join(m.Path, tokenSep)
}

// DecodeMessage parses a wire message. The text must contain exactly three
// colon-separated fields; an empty payload field decodes to an empty path.
func DecodeMessage(text string) (Message, error) {
	fields := strings.Split(text, fieldSep)
	if len(fields) != 3 {
		return Message{}, &FormatError{Input: text, Reason: "want exactly 3 fields"}
	}
	m := Message{Command: Command(fields[0]), Target: fields[1]}
	if fields[2] != "" {
		m.Path = strings.Split(fields[2], tokenSep)
	}
	return m, nil
}
