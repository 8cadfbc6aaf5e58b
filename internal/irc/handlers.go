package irc

import "strings"

func (c *Client) handleMode(setter Identity, target, modes string, params []string) {
	if !c.IsChannel(target) {
		// user modes are not tracked
		return
	}

	ch := c.AddChannel(target)
	membership, _ := c.isupport.Prefix()
	changes := ch.ApplyModes(c.modeTable, membership, modes, params, c.casemap)

	if c.Delegate != nil && len(changes) != 0 {
		c.Delegate.ModeChanged(c, ch, setter, changes)
	}
}

func (c *Client) handlePrivmsg(msg *Message) {
	if c.Delegate == nil {
		return
	}

	sender := msg.Sender()
	target := msg.Arg(0)
	text := msg.Last()

	if !c.IsChannel(target) {
		c.Delegate.PrivateMessage(c, sender, text)
		return
	}

	ch, ok := c.Channel(target)
	if !ok {
		// not tracked: hand out a detached copy so that the message
		// does not register the channel
		ch = newChannel(target)
	}
	c.Delegate.ChannelMessage(c, sender, ch, text)
}

func (c *Client) handleJoin(msg *Message) {
	who := msg.Sender()
	name := msg.Arg(0)

	var ch *Channel
	if c.IsMe(who.Nick) {
		ch = c.AddChannel(name)
		if who.Host != "" {
			c.self.Host = who.Host
		}
	} else if tracked, ok := c.Channel(name); ok {
		ch = tracked
	} else {
		return
	}

	nickCf := c.casemap(who.Nick)
	if m, ok := ch.Members[nickCf]; ok {
		m.Identity = who
	} else {
		ch.Members[nickCf] = &Member{Identity: who}
	}

	if c.Delegate != nil {
		c.Delegate.Joined(c, ch, who)
	}
}

func (c *Client) handlePart(msg *Message) {
	who := msg.Sender()
	ch, ok := c.Channel(msg.Arg(0))
	if !ok {
		return
	}

	if c.IsMe(who.Nick) {
		c.RemoveChannel(ch.Name)
	} else {
		delete(ch.Members, c.casemap(who.Nick))
	}

	if c.Delegate != nil {
		c.Delegate.Parted(c, ch, who, msg.Arg(1))
	}
}

func (c *Client) handleKick(msg *Message) {
	nick := msg.Arg(1)
	ch, ok := c.Channel(msg.Arg(0))
	if !ok {
		return
	}

	if c.IsMe(nick) {
		c.RemoveChannel(ch.Name)
	} else {
		delete(ch.Members, c.casemap(nick))
	}

	if c.Delegate != nil {
		c.Delegate.Kicked(c, ch, nick, msg.Sender(), msg.Arg(2))
	}
}

func (c *Client) handleQuit(msg *Message) {
	who := msg.Sender()
	nickCf := c.casemap(who.Nick)

	for _, ch := range c.channels {
		delete(ch.Members, nickCf)
	}

	if c.Delegate != nil {
		c.Delegate.Quit(c, who, msg.Arg(0))
	}
}

func (c *Client) handleNick(msg *Message) {
	who := msg.Sender()
	newNick := msg.Arg(0)
	nickCf := c.casemap(who.Nick)
	newNickCf := c.casemap(newNick)

	for _, ch := range c.channels {
		m, ok := ch.Members[nickCf]
		if !ok {
			continue
		}
		delete(ch.Members, nickCf)
		m.Identity.Nick = newNick
		ch.Members[newNickCf] = m
	}

	if nickCf == c.nickCf {
		c.setNick(newNick)
	}

	if c.Delegate != nil {
		c.Delegate.NickChanged(c, who, newNick)
	}
}

// handleNames adds the members listed in a RPL_NAMREPLY. Each entry is a nick
// or a full mask, preceded by the symbols of its membership modes.
func (c *Client) handleNames(channel, names string) {
	ch, ok := c.Channel(channel)
	if !ok {
		return
	}

	modes, symbols := c.isupport.Prefix()
	for _, name := range strings.Fields(names) {
		mask := strings.TrimLeft(name, symbols)
		if mask == "" {
			continue
		}

		member := &Member{Identity: ParseIdentity(mask)}
		for _, symbol := range name[:len(name)-len(mask)] {
			if i := strings.IndexRune(symbols, symbol); i >= 0 {
				member.addMode(modes[i], modes)
			}
		}
		ch.Members[c.casemap(member.Identity.Nick)] = member
	}
}

// updateFeatures records 005 tokens and refreshes the state derived from
// them.
func (c *Client) updateFeatures(tokens []string) {
	c.isupport.Apply(tokens)
	c.modeTable = c.isupport.ModeTable()

	casemap := CasemapRFC1459
	if c.isupport.CaseMapping() == "ascii" {
		casemap = CasemapASCII
	}
	c.setCasemap(casemap)
}

// setCasemap switches to casemap and rekeys the maps that depend on it.
func (c *Client) setCasemap(casemap func(string) string) {
	c.casemap = casemap
	c.nickCf = casemap(c.self.Nick)

	channels := make(map[string]*Channel, len(c.channels))
	for _, ch := range c.channels {
		members := make(map[string]*Member, len(ch.Members))
		for _, m := range ch.Members {
			members[casemap(m.Identity.Nick)] = m
		}
		ch.Members = members
		channels[casemap(ch.Name)] = ch
	}
	c.channels = channels
}

func (c *Client) setNick(nick string) {
	c.self.Nick = nick
	c.nickCf = c.casemap(nick)
}
