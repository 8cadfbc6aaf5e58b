package irc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the commands the client knows how to handle. Every other
// command parses as KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindPing
	KindWelcome
	KindISupport
	KindMode
	KindChannelModeIs
	KindPrivmsg
	KindNotice
	KindJoin
	KindPart
	KindKick
	KindQuit
	KindNick
	KindTopic
	KindTopicReply
	KindNoTopic
	KindNamReply
	KindMOTDStart
	KindMOTD
	KindEndOfMOTD
	KindNoMOTD
	KindNicknameInUse
	KindErroneousNickname
)

var kindNames = [...]string{
	KindUnknown:           "unknown",
	KindPing:              "PING",
	KindWelcome:           rplWelcome,
	KindISupport:          rplIsupport,
	KindMode:              "MODE",
	KindChannelModeIs:     rplChannelmodeis,
	KindPrivmsg:           "PRIVMSG",
	KindNotice:            "NOTICE",
	KindJoin:              "JOIN",
	KindPart:              "PART",
	KindKick:              "KICK",
	KindQuit:              "QUIT",
	KindNick:              "NICK",
	KindTopic:             "TOPIC",
	KindTopicReply:        rplTopic,
	KindNoTopic:           rplNotopic,
	KindNamReply:          rplNamreply,
	KindMOTDStart:         rplMotdstart,
	KindMOTD:              rplMotd,
	KindEndOfMOTD:         rplEndofmotd,
	KindNoMOTD:            errNomotd,
	KindNicknameInUse:     errNicknameinuse,
	KindErroneousNickname: errErroneusnickname,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// command describes how a known command is validated.
type command struct {
	kind        Kind
	minArgs     int  // counting the trailing parameter
	needsPrefix bool // whether the handler needs to know who sent it
}

var commands = map[string]command{
	"PING":              {KindPing, 1, false},
	rplWelcome:          {KindWelcome, 0, false},
	rplIsupport:         {KindISupport, 1, false},
	"MODE":              {KindMode, 2, false},
	rplChannelmodeis:    {KindChannelModeIs, 3, false},
	"PRIVMSG":           {KindPrivmsg, 2, false},
	"NOTICE":            {KindNotice, 2, false},
	"JOIN":              {KindJoin, 1, true},
	"PART":              {KindPart, 1, true},
	"KICK":              {KindKick, 2, false},
	"QUIT":              {KindQuit, 0, true},
	"NICK":              {KindNick, 1, true},
	"TOPIC":             {KindTopic, 2, false},
	rplTopic:            {KindTopicReply, 3, false},
	rplNotopic:          {KindNoTopic, 2, false},
	rplNamreply:         {KindNamReply, 4, false},
	rplMotdstart:        {KindMOTDStart, 0, false},
	rplMotd:             {KindMOTD, 2, false},
	rplEndofmotd:        {KindEndOfMOTD, 0, false},
	errNomotd:           {KindNoMOTD, 0, false},
	errNicknameinuse:    {KindNicknameInUse, 2, false},
	errErroneusnickname: {KindErroneousNickname, 2, false},
}

// HandledCommands returns the commands that parse to a Kind other than
// KindUnknown, sorted. Transports that dispatch by command use it to know
// what to forward.
func HandledCommands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrMissingCommand  = errors.New("missing command")
	ErrNotEnoughParams = errors.New("not enough params")
	ErrNoPrefix        = errors.New("missing prefix")
)

// ParseError reports a line that could not be turned into a Message.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed line %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message is one parsed protocol line.
type Message struct {
	Tags map[string]string

	// Source is the raw prefix, without its leading ':'. Prefix is only set
	// when Source looks like a user mask rather than a server name.
	Source string
	Prefix *Identity

	Command string
	Kind    Kind

	Params      []string // middle parameters, excluding the trailing one
	Trailing    string
	HasTrailing bool
}

// ParseMessage tokenizes a single line. Line terminators are ignored.
func ParseMessage(line string) (msg Message, err error) {
	raw := strings.TrimRight(line, "\r\n")
	line = strings.TrimLeft(raw, " ")
	if line == "" {
		err = &ParseError{Line: raw, Err: ErrEmptyMessage}
		return
	}

	if line[0] == '@' {
		var tags string

		tags, line = word(line)
		msg.Tags = parseTags(tags)
	}

	if line != "" && line[0] == ':' {
		var prefix string

		prefix, line = word(line)
		msg.Source = prefix[1:]
		if strings.ContainsAny(msg.Source, "!@") {
			id := ParseIdentity(msg.Source)
			msg.Prefix = &id
		}
	}

	if line == "" {
		err = &ParseError{Line: raw, Err: ErrMissingCommand}
		return
	}

	msg.Command, line = word(line)
	msg.Command = strings.ToUpper(msg.Command)

	for line != "" {
		if line[0] == ':' {
			msg.Trailing = line[1:]
			msg.HasTrailing = true
			break
		}

		var param string
		param, line = word(line)
		msg.Params = append(msg.Params, param)
	}

	cmd, ok := commands[msg.Command]
	if !ok {
		return
	}
	msg.Kind = cmd.kind

	if len(msg.Args()) < cmd.minArgs {
		err = &ParseError{Line: raw, Err: ErrNotEnoughParams}
	} else if cmd.needsPrefix && msg.Source == "" {
		err = &ParseError{Line: raw, Err: ErrNoPrefix}
	}

	return
}

// Args returns the middle parameters followed by the trailing one, if any.
func (msg *Message) Args() []string {
	if !msg.HasTrailing {
		return msg.Params
	}
	args := make([]string, 0, len(msg.Params)+1)
	args = append(args, msg.Params...)
	return append(args, msg.Trailing)
}

// Arg returns the i-th argument, or "" when there are not that many.
func (msg *Message) Arg(i int) string {
	args := msg.Args()
	if i < 0 || len(args) <= i {
		return ""
	}
	return args[i]
}

// Last returns the final argument, which is usually the human readable text.
func (msg *Message) Last() string {
	if msg.HasTrailing {
		return msg.Trailing
	}
	if len(msg.Params) == 0 {
		return ""
	}
	return msg.Params[len(msg.Params)-1]
}

// Sender parses the source as an identity. Server names become the nick.
func (msg *Message) Sender() Identity {
	if msg.Prefix != nil {
		return *msg.Prefix
	}
	return ParseIdentity(msg.Source)
}

// word splits off the first space-delimited token and skips the spaces that
// follow it.
func word(s string) (w, rest string) {
	w, rest, _ = strings.Cut(s, " ")
	rest = strings.TrimLeft(rest, " ")
	return
}

func tagEscape(c rune) (escape rune) {
	switch c {
	case ':':
		escape = ';'
	case 's':
		escape = ' '
	case 'r':
		escape = '\r'
	case 'n':
		escape = '\n'
	default:
		escape = c
	}

	return
}

func unescapeTagValue(escaped string) string {
	var builder strings.Builder
	builder.Grow(len(escaped))
	escape := false

	for _, c := range escaped {
		if c == '\\' && !escape {
			escape = true
			continue
		}
		if escape {
			c = tagEscape(c)
		}
		builder.WriteRune(c)
		escape = false
	}

	return builder.String()
}

func parseTags(s string) (tags map[string]string) {
	tags = map[string]string{}

	for _, item := range strings.Split(s[1:], ";") {
		if item == "" || item == "=" || item == "+" || item == "+=" {
			continue
		}

		k, v, _ := strings.Cut(item, "=")
		tags[k] = unescapeTagValue(v)
	}

	return
}
