package main

import (
	"log"
	"time"

	"github.com/dalnet/irctk/internal/config"
	"github.com/dalnet/irctk/internal/irc"
	"github.com/dalnet/irctk/internal/storage"
)

// bot reacts to client events: it joins the configured channels and records
// private messages and the server MOTD.
type bot struct {
	irc.NopDelegate

	cfg        *config.Config
	transcript []string // newest first
	now        func() time.Time
}

func newBot(cfg *config.Config) *bot {
	return &bot{cfg: cfg, now: time.Now}
}

func (b *bot) Registered(c *irc.Client) {
	log.Printf("Registered as %s", c.Nickname())
	for _, channel := range b.cfg.Channels {
		c.Join(channel, "")
	}
}

func (b *bot) PrivateMessage(c *irc.Client, from irc.Identity, text string) {
	entry := storage.FormatEntry(b.now().UTC(), from.String(), text)
	b.transcript = storage.AddEntry(b.transcript, entry)
	if err := storage.SaveTranscript(b.cfg.DataDir, b.transcript); err != nil {
		log.Printf("Error saving transcript: %v", err)
	}
}

func (b *bot) Joined(c *irc.Client, ch *irc.Channel, who irc.Identity) {
	if c.IsMe(who.Nick) {
		log.Printf("Joined %s", ch.Name)
	}
}

func (b *bot) Kicked(c *irc.Client, ch *irc.Channel, nick string, by irc.Identity, reason string) {
	if c.IsMe(nick) {
		log.Printf("Kicked from %s by %s: %s", ch.Name, by.Nick, reason)
	}
}

func (b *bot) MOTD(c *irc.Client, motd string) {
	err := storage.SaveMOTD(b.cfg.DataDir, &storage.MOTD{Server: b.cfg.Server, Message: motd})
	if err != nil {
		log.Printf("Error saving MOTD: %v", err)
	}
}
