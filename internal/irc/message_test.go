package irc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage(":bob!b@host PRIVMSG kylef :Hey there  :)\r\n")
	require.NoError(t, err)

	assert.Equal(t, "bob!b@host", msg.Source)
	require.NotNil(t, msg.Prefix)
	assert.Equal(t, Identity{"bob", "b", "host"}, *msg.Prefix)
	assert.Equal(t, "PRIVMSG", msg.Command)
	assert.Equal(t, KindPrivmsg, msg.Kind)
	assert.Equal(t, []string{"kylef"}, msg.Params)
	assert.True(t, msg.HasTrailing)
	assert.Equal(t, "Hey there  :)", msg.Trailing)
	assert.Equal(t, []string{"kylef", "Hey there  :)"}, msg.Args())
	assert.Equal(t, "Hey there  :)", msg.Last())
}

func TestParseMessageServerPrefix(t *testing.T) {
	msg, err := ParseMessage(":irc.kylefuller.co.uk 001 kyle :Welcome")
	require.NoError(t, err)

	assert.Equal(t, "irc.kylefuller.co.uk", msg.Source)
	assert.Nil(t, msg.Prefix)
	assert.Equal(t, KindWelcome, msg.Kind)
	assert.Equal(t, "irc.kylefuller.co.uk", msg.Sender().Nick)
}

func TestParseMessageNoPrefix(t *testing.T) {
	msg, err := ParseMessage("ping :hello")
	require.NoError(t, err)

	assert.Equal(t, "", msg.Source)
	assert.Equal(t, "PING", msg.Command)
	assert.Equal(t, KindPing, msg.Kind)
	assert.Empty(t, msg.Params)
	assert.Equal(t, "hello", msg.Last())
}

func TestParseMessageParams(t *testing.T) {
	msg, err := ParseMessage(":kyle!kyle@kyle MODE  #test   +b  cake")
	require.NoError(t, err)

	assert.Equal(t, []string{"#test", "+b", "cake"}, msg.Params)
	assert.False(t, msg.HasTrailing)
	assert.Equal(t, "cake", msg.Last())
	assert.Equal(t, "", msg.Arg(3))
}

func TestParseMessageEmptyTrailing(t *testing.T) {
	msg, err := ParseMessage(":bob!b@host PRIVMSG kylef :")
	require.NoError(t, err)

	assert.True(t, msg.HasTrailing)
	assert.Equal(t, "", msg.Trailing)
	assert.Len(t, msg.Args(), 2)
}

func TestParseMessageTags(t *testing.T) {
	msg, err := ParseMessage(`@time=2021-01-01T00:00:00.000Z;msgid=abc\sdef;+draft/flag :bob!b@host PRIVMSG #test :hi`)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"time":        "2021-01-01T00:00:00.000Z",
		"msgid":       "abc def",
		"+draft/flag": "",
	}, msg.Tags)
	assert.Equal(t, "bob!b@host", msg.Source)
	assert.Equal(t, "hi", msg.Last())
}

func TestParseMessageUnknownCommand(t *testing.T) {
	msg, err := ParseMessage(":irc 999 kylef :whatever")
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, msg.Kind)
	assert.Equal(t, "999", msg.Command)
}

func TestParseMessageErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmptyMessage},
		{"\r\n", ErrEmptyMessage},
		{"   ", ErrEmptyMessage},
		{":irc.example.com", ErrMissingCommand},
		{"@a=b", ErrMissingCommand},
		{"@a=b :irc.example.com ", ErrMissingCommand},
		{"PING", ErrNotEnoughParams},
		{":bob!b@host MODE #test", ErrNotEnoughParams},
		{":bob!b@host PRIVMSG kylef", ErrNotEnoughParams},
		{"JOIN #test", ErrNoPrefix},
	}

	for _, tt := range tests {
		_, err := ParseMessage(tt.line)

		var perr *ParseError
		if assert.True(t, errors.As(err, &perr), "ParseMessage(%q) = %v", tt.line, err) {
			assert.ErrorIs(t, err, tt.want, "ParseMessage(%q)", tt.line)
		}
	}
}

func TestHandledCommands(t *testing.T) {
	names := HandledCommands()
	assert.Contains(t, names, "PING")
	assert.Contains(t, names, "001")
	assert.Contains(t, names, "PRIVMSG")
	assert.NotContains(t, names, "FROBNICATE")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		msg, _ := ParseMessage(":irc " + name + " a b c d")
		assert.NotEqual(t, KindUnknown, msg.Kind, name)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "PRIVMSG", KindPrivmsg.String())
	assert.Equal(t, "005", KindISupport.String())
	assert.Equal(t, "Kind(-1)", Kind(-1).String())
}
