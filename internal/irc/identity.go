package irc

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// Identity is the nick!user@host triple naming the origin of a message.
type Identity struct {
	Nick string
	User string
	Host string
}

// ParseIdentity splits raw on the first '!' and then on the first '@' of
// the remainder. Missing parts are left empty. When raw has no '!', the nick
// runs up to the first '@' and both user and host are empty.
func ParseIdentity(raw string) (id Identity) {
	nick, rest, ok := strings.Cut(raw, "!")
	if !ok {
		id.Nick, _, _ = strings.Cut(raw, "@")
		return
	}

	id.Nick = nick
	id.User, id.Host, _ = strings.Cut(rest, "@")
	return
}

// IsZero reports whether every field is empty.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// NUH converts the identity to its irc-go representation.
func (id Identity) NUH() ircmsg.NUH {
	return ircmsg.NUH{Name: id.Nick, User: id.User, Host: id.Host}
}

func (id Identity) String() string {
	nuh := id.NUH()
	return nuh.Canonical()
}
