package irc

import (
	"regexp"
	"strconv"
	"strings"
)

// Fallbacks used when the server does not advertise a limit.
const (
	DefaultNickLength    = 9
	DefaultChannelLength = 200
	DefaultTopicLength   = 390
	DefaultChanTypes     = "#&"
	DefaultPrefix        = "(ov)@+"
	DefaultCaseMapping   = "rfc1459"
)

// isupportToken matches a single RPL_ISUPPORT token. It is used to tell
// tokens apart from the human readable "are supported by this server" text.
var isupportToken = regexp.MustCompile(`^-?[A-Z0-9]+(=\S*)?$`)

// ISupport holds the features a server advertised through RPL_ISUPPORT.
// Keys are stored upper-cased; bare tokens map to "".
type ISupport struct {
	features map[string]string
}

func NewISupport() *ISupport {
	return &ISupport{features: map[string]string{}}
}

// Apply records the given tokens. Later values overwrite earlier ones and a
// "-KEY" token forgets KEY.
func (s *ISupport) Apply(tokens []string) {
	for _, f := range tokens {
		if f == "" || f == "-" || f == "=" || f == "-=" {
			continue
		}

		if strings.HasPrefix(f, "-") {
			delete(s.features, strings.ToUpper(f[1:]))
			continue
		}

		key, value, _ := strings.Cut(f, "=")
		s.features[strings.ToUpper(key)] = value
	}
}

// Get returns the raw value of key.
func (s *ISupport) Get(key string) (value string, ok bool) {
	value, ok = s.features[strings.ToUpper(key)]
	return
}

// Has reports whether the server advertised key at all.
func (s *ISupport) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Int returns the numeric value of key, or def when it is absent or not a
// number.
func (s *ISupport) Int(key string, def int) int {
	value, ok := s.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

func (s *ISupport) str(key, def string) string {
	if value, ok := s.Get(key); ok && value != "" {
		return value
	}
	return def
}

func (s *ISupport) MaximumNickLength() int {
	return s.Int("NICKLEN", DefaultNickLength)
}

func (s *ISupport) MaximumChannelLength() int {
	return s.Int("CHANNELLEN", DefaultChannelLength)
}

func (s *ISupport) MaximumTopicLength() int {
	return s.Int("TOPICLEN", DefaultTopicLength)
}

func (s *ISupport) Network() string {
	return s.str("NETWORK", "")
}

// ChanTypes returns the channel prefixes. An empty CHANTYPES means the
// server has no channels at all.
func (s *ISupport) ChanTypes() string {
	if value, ok := s.Get("CHANTYPES"); ok {
		return value
	}
	return DefaultChanTypes
}

func (s *ISupport) CaseMapping() string {
	return s.str("CASEMAPPING", DefaultCaseMapping)
}

// Prefix returns the membership mode letters and their matching symbols,
// e.g. "ov" and "@+". An empty PREFIX means there are no membership modes.
func (s *ISupport) Prefix() (modes, symbols string) {
	value, ok := s.Get("PREFIX")
	if !ok {
		value = DefaultPrefix
	}
	if value == "" || value[0] != '(' {
		return
	}
	modes, symbols, ok = strings.Cut(value[1:], ")")
	if !ok || len(modes) != len(symbols) {
		return "", ""
	}
	return
}

// ModeTable returns the channel mode table described by CHANMODES, falling
// back to DefaultModeTable.
func (s *ISupport) ModeTable() ModeTable {
	if value, ok := s.Get("CHANMODES"); ok {
		if table, ok := ParseChanModes(value); ok {
			return table
		}
	}
	return DefaultModeTable()
}

// isupportTokens extracts the feature tokens of a 005 reply. The first
// argument is our own nick. The trailing argument is normally descriptive
// text, but some servers pack the tokens in it instead.
func isupportTokens(msg *Message) []string {
	var tokens []string
	if len(msg.Params) > 1 {
		tokens = append(tokens, msg.Params[1:]...)
	}
	if !msg.HasTrailing {
		return tokens
	}

	fields := strings.Fields(msg.Trailing)
	for _, f := range fields {
		if !isupportToken.MatchString(f) {
			return tokens
		}
	}
	return append(tokens, fields...)
}
