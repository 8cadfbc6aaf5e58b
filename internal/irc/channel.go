package irc

import (
	"sort"
	"strings"
)

// Member is a user known to be in a channel.
type Member struct {
	Identity Identity
	Modes    string // membership mode letters, highest rank first
}

// Channel is a channel tracked by a Client.
type Channel struct {
	Name    string
	Modes   ModeSet
	Topic   string
	Members map[string]*Member // keyed by casemapped nick
}

func newChannel(name string) *Channel {
	return &Channel{
		Name:    name,
		Modes:   ModeSet{},
		Members: map[string]*Member{},
	}
}

// ApplyModes applies a mode string and its parameters. membership lists the
// PREFIX mode letters, in rank order; their changes update Members instead
// of Modes. The applied changes are returned.
func (c *Channel) ApplyModes(table ModeTable, membership string, modes string, params []string, casemap func(string) string) []ModeChange {
	changes := ParseModeChanges(table, membership, modes, params)
	c.Modes.Apply(changes)

	for _, change := range changes {
		if !change.Membership {
			continue
		}
		m, ok := c.Members[casemap(change.Param)]
		if !ok {
			continue
		}
		if change.Add {
			m.addMode(change.Letter, membership)
		} else {
			m.Modes = strings.ReplaceAll(m.Modes, string(change.Letter), "")
		}
	}

	return changes
}

// Nicks returns the nicks of all members, sorted.
func (c *Channel) Nicks() []string {
	nicks := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		nicks = append(nicks, m.Identity.Nick)
	}
	sort.Strings(nicks)
	return nicks
}

// addMode inserts letter in m.Modes, keeping the order given by rank.
func (m *Member) addMode(letter byte, rank string) {
	if strings.IndexByte(m.Modes, letter) >= 0 {
		return
	}
	modes := []byte(m.Modes + string(letter))
	sort.SliceStable(modes, func(i, j int) bool {
		return strings.IndexByte(rank, modes[i]) < strings.IndexByte(rank, modes[j])
	})
	m.Modes = string(modes)
}

// Prefix returns the symbol of the highest membership mode held, or "".
func (m *Member) Prefix(modes, symbols string) string {
	if m.Modes == "" {
		return ""
	}
	i := strings.IndexByte(modes, m.Modes[0])
	if i < 0 || len(symbols) <= i {
		return ""
	}
	return symbols[i : i+1]
}

// CasemapASCII lower-cases the ASCII letters of name.
func CasemapASCII(name string) string {
	return strings.ToLower(name)
}

// CasemapRFC1459 is CasemapASCII plus the "[]\~" to "{}|^" mapping.
func CasemapRFC1459(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		case r == '[':
			r = '{'
		case r == ']':
			r = '}'
		case r == '\\':
			r = '|'
		case r == '~':
			r = '^'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
