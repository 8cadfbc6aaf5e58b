package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		raw  string
		want Identity
	}{
		{"bob!b@irc.kylefuller.co.uk", Identity{"bob", "b", "irc.kylefuller.co.uk"}},
		{"bob!b", Identity{"bob", "b", ""}},
		{"bob", Identity{"bob", "", ""}},
		{"bob@host", Identity{"bob", "", ""}},
		{"irc.example.com", Identity{"irc.example.com", "", ""}},
		{"a!b!c@d@e", Identity{"a", "b!c", "d@e"}},
		{"!@", Identity{}},
		{"", Identity{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseIdentity(tt.raw), "ParseIdentity(%q)", tt.raw)
	}
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "bob!b@host", ParseIdentity("bob!b@host").String())
	assert.Equal(t, "irc.example.com", ParseIdentity("irc.example.com").String())
	assert.True(t, Identity{}.IsZero())
	assert.False(t, ParseIdentity("bob").IsZero())
}

func TestIdentityEquality(t *testing.T) {
	assert.True(t, ParseIdentity("bob!b@host") == Identity{Nick: "bob", User: "b", Host: "host"})
	assert.False(t, ParseIdentity("bob!b@host") == ParseIdentity("bob!b@other"))
}
