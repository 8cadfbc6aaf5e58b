package irc

import (
	"sort"
	"strings"
)

// ModeType describes how a channel mode letter behaves.
type ModeType int

const (
	// ModeBoolean modes are either set or not, and never take a parameter.
	ModeBoolean ModeType = iota
	// ModeParameterized modes hold a single value, replaced on every set.
	ModeParameterized
	// ModeList modes hold an ordered list of values, such as ban masks.
	ModeList
)

func (t ModeType) String() string {
	switch t {
	case ModeBoolean:
		return "boolean"
	case ModeParameterized:
		return "parameterized"
	case ModeList:
		return "list"
	}
	return "unknown"
}

// ModeTable maps channel mode letters to their type.
type ModeTable map[byte]ModeType

// DefaultModeTable is used until the server advertises CHANMODES.
func DefaultModeTable() ModeTable {
	return ModeTable{
		'b': ModeList,
		'e': ModeList,
		'I': ModeList,
		'k': ModeParameterized,
		'l': ModeParameterized,
		'i': ModeBoolean,
		'm': ModeBoolean,
		'n': ModeBoolean,
		'p': ModeBoolean,
		's': ModeBoolean,
		't': ModeBoolean,
	}
}

// ParseChanModes builds a table from an ISUPPORT CHANMODES value of the form
// "A,B,C,D". Group A holds list modes, groups B and C parameterized modes and
// group D boolean modes. Groups past the fourth are ignored.
func ParseChanModes(value string) (ModeTable, bool) {
	parts := strings.SplitN(value, ",", 5)
	if len(parts) < 4 {
		return nil, false
	}

	table := ModeTable{}
	for i, mt := range []ModeType{ModeList, ModeParameterized, ModeParameterized, ModeBoolean} {
		for j := 0; j < len(parts[i]); j++ {
			table[parts[i][j]] = mt
		}
	}
	return table, true
}

// Type returns the type of letter. Unknown letters are boolean so that they
// never consume a parameter meant for a known mode.
func (t ModeTable) Type(letter byte) ModeType {
	if mt, ok := t[letter]; ok {
		return mt
	}
	return ModeBoolean
}

// ModeChange is a single signed mode letter taken out of a mode string.
type ModeChange struct {
	Add    bool
	Letter byte
	Type   ModeType

	// Membership is set for PREFIX modes such as +o, whose parameter is a
	// nick rather than a channel attribute.
	Membership bool
	Param      string
}

func (c ModeChange) String() string {
	var sb strings.Builder
	if c.Add {
		sb.WriteByte('+')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(c.Letter)
	if c.Param != "" {
		sb.WriteByte(' ')
		sb.WriteString(c.Param)
	}
	return sb.String()
}

// ParseModeChanges splits a mode string such as "+tn-l+b" into individual
// changes, pairing each letter that needs one with the next entry of params.
// A letter that needs a parameter when none is left is skipped.
func ParseModeChanges(table ModeTable, membership string, modes string, params []string) []ModeChange {
	var changes []ModeChange
	add := true

	for i := 0; i < len(modes); i++ {
		letter := modes[i]
		switch letter {
		case '+':
			add = true
			continue
		case '-':
			add = false
			continue
		}

		change := ModeChange{Add: add, Letter: letter}
		if strings.IndexByte(membership, letter) >= 0 {
			change.Membership = true
		} else {
			change.Type = table.Type(letter)
		}

		if change.Membership || change.Type != ModeBoolean {
			if len(params) == 0 {
				continue
			}
			change.Param, params = params[0], params[1:]
		}

		changes = append(changes, change)
	}

	return changes
}

// ModeValue is the state of one set mode. Param is used by parameterized
// modes and List by list modes.
type ModeValue struct {
	Type  ModeType
	Param string
	List  []string
}

// ModeSet holds the modes currently set on a channel. A letter is present if
// and only if it is set, and list modes are never stored empty.
type ModeSet map[byte]ModeValue

// Apply applies changes in order. Membership changes are ignored.
func (m ModeSet) Apply(changes []ModeChange) {
	for _, c := range changes {
		if !c.Membership {
			m.apply(c)
		}
	}
}

func (m ModeSet) apply(c ModeChange) {
	switch c.Type {
	case ModeParameterized:
		if c.Add {
			m[c.Letter] = ModeValue{Type: ModeParameterized, Param: c.Param}
		} else {
			delete(m, c.Letter)
		}
	case ModeList:
		v, ok := m[c.Letter]
		if c.Add {
			v.Type = ModeList
			v.List = append(v.List, c.Param)
			m[c.Letter] = v
			return
		}
		if !ok {
			return
		}
		for i, item := range v.List {
			if item != c.Param {
				continue
			}
			list := make([]string, 0, len(v.List)-1)
			list = append(list, v.List[:i]...)
			v.List = append(list, v.List[i+1:]...)
			break
		}
		if len(v.List) == 0 {
			delete(m, c.Letter)
		} else {
			m[c.Letter] = v
		}
	default:
		if c.Add {
			m[c.Letter] = ModeValue{Type: ModeBoolean}
		} else {
			delete(m, c.Letter)
		}
	}
}

// IsSet reports whether letter is set.
func (m ModeSet) IsSet(letter byte) bool {
	_, ok := m[letter]
	return ok
}

// Param returns the value of a parameterized mode.
func (m ModeSet) Param(letter byte) (string, bool) {
	v, ok := m[letter]
	if !ok || v.Type != ModeParameterized {
		return "", false
	}
	return v.Param, true
}

// List returns a copy of the values of a list mode.
func (m ModeSet) List(letter byte) []string {
	v, ok := m[letter]
	if !ok || v.Type != ModeList {
		return nil
	}
	return append([]string(nil), v.List...)
}

// String formats the boolean and parameterized modes the way RPL_CHANNELMODEIS
// does, e.g. "+lnt 6". List modes are left out.
func (m ModeSet) String() string {
	letters := make([]byte, 0, len(m))
	for letter, v := range m {
		if v.Type != ModeList {
			letters = append(letters, letter)
		}
	}
	if len(letters) == 0 {
		return ""
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var params []string
	for _, letter := range letters {
		if v := m[letter]; v.Type == ModeParameterized {
			params = append(params, v.Param)
		}
	}
	return strings.Join(append([]string{"+" + string(letters)}, params...), " ")
}
