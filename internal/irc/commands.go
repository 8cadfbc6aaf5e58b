package irc

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// Register sends the registration burst. password is only sent when set.
func (c *Client) Register(password string) {
	if password != "" {
		c.send("PASS", password)
	}
	c.send("NICK", c.self.Nick)
	c.send("USER", c.self.User, "0", "*", c.realname)
}

// Join asks to join channel. key may be empty.
func (c *Client) Join(channel, key string) {
	if key == "" {
		c.send("JOIN", channel)
	} else {
		c.send("JOIN", channel, key)
	}
}

func (c *Client) Part(channel, reason string) {
	if reason == "" {
		c.send("PART", channel)
	} else {
		c.send("PART", channel, reason)
	}
}

func (c *Client) PrivMsg(target, text string) {
	c.send("PRIVMSG", target, text)
}

func (c *Client) Notice(target, text string) {
	c.send("NOTICE", target, text)
}

func (c *Client) Quit(reason string) {
	if reason == "" {
		c.send("QUIT")
	} else {
		c.send("QUIT", reason)
	}
}

// send formats a command and hands it to the outbound sink. Lines that cannot
// be encoded, such as parameters containing CR or LF, are dropped.
func (c *Client) send(command string, params ...string) {
	m := ircmsg.MakeMessage(nil, "", command, params...)
	line, err := m.Line()
	if err != nil {
		c.logger.Printf("Dropping outgoing %s: %v", command, err)
		return
	}
	c.out.Send(strings.TrimRight(line, "\r\n"))
}
