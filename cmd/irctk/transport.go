package main

import (
	"crypto/tls"
	"log"
	"strings"

	"github.com/dalnet/irctk/internal/config"
	"github.com/dalnet/irctk/internal/irc"
	"github.com/dalnet/irctk/internal/outbound"
	"github.com/ergochat/irc-go/ircevent"
	"github.com/ergochat/irc-go/ircmsg"
)

// transport feeds an ircevent connection into an irc.Client and paces what
// the client writes back.
type transport struct {
	conn   *ircevent.Connection
	client *irc.Client
	queue  *outbound.Queue
}

func newTransport(cfg *config.Config, d irc.Delegate) *transport {
	t := &transport{
		queue: outbound.New(cfg.SendRate, cfg.SendBurst, outbound.DefaultSize),
	}

	t.client = irc.NewClient(cfg.Nick, cfg.Username, cfg.IRCName, irc.SinkFunc(t.send))
	t.client.Delegate = d

	t.conn = &ircevent.Connection{
		Server:      cfg.Addr(),
		Nick:        cfg.Nick,
		User:        cfg.Username,
		RealName:    cfg.IRCName,
		Password:    cfg.ServerPass,
		QuitMessage: cfg.QuitMessage,
		UseTLS:      cfg.UseTLS,
		TLSConfig:   &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
	}

	// ircevent dispatches on the exact command name
	for _, command := range irc.HandledCommands() {
		t.conn.AddCallback(command, t.onMessage)
	}

	return t
}

func (t *transport) onMessage(e ircmsg.Message) {
	line, err := e.Line()
	if err != nil {
		log.Printf("Could not encode %s: %v", e.Command, err)
		return
	}
	t.client.ReadData(line)
}

func (t *transport) send(line string) {
	if forward(line, t.client.IsRegistered()) {
		t.queue.Send(line)
	}
}

// forward reports whether a line from the client should reach the server.
// ircevent answers PING itself and retries taken nicks while registering.
func forward(line string, registered bool) bool {
	command, _, _ := strings.Cut(line, " ")
	switch command {
	case "PONG":
		return false
	case "NICK":
		return registered
	}
	return true
}
