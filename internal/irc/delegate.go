package irc

// Delegate receives the events a Client derives from server traffic. All
// methods are called synchronously from Client.ReadData.
//
// Embed NopDelegate to only implement the events you care about.
type Delegate interface {
	Registered(c *Client)
	PrivateMessage(c *Client, sender Identity, text string)
	ChannelMessage(c *Client, sender Identity, channel *Channel, text string)
	Notice(c *Client, sender Identity, target, text string)
	Joined(c *Client, channel *Channel, who Identity)
	Parted(c *Client, channel *Channel, who Identity, reason string)
	Kicked(c *Client, channel *Channel, nick string, by Identity, reason string)
	Quit(c *Client, who Identity, reason string)
	NickChanged(c *Client, who Identity, newNick string)
	ModeChanged(c *Client, channel *Channel, setter Identity, changes []ModeChange)
	TopicChanged(c *Client, channel *Channel, setter Identity, topic string)
	MOTD(c *Client, motd string)
}

// NopDelegate implements every Delegate method as a no-op.
type NopDelegate struct{}

func (NopDelegate) Registered(*Client)                                    {}
func (NopDelegate) PrivateMessage(*Client, Identity, string)              {}
func (NopDelegate) ChannelMessage(*Client, Identity, *Channel, string)    {}
func (NopDelegate) Notice(*Client, Identity, string, string)              {}
func (NopDelegate) Joined(*Client, *Channel, Identity)                    {}
func (NopDelegate) Parted(*Client, *Channel, Identity, string)            {}
func (NopDelegate) Kicked(*Client, *Channel, string, Identity, string)    {}
func (NopDelegate) Quit(*Client, Identity, string)                        {}
func (NopDelegate) NickChanged(*Client, Identity, string)                 {}
func (NopDelegate) ModeChanged(*Client, *Channel, Identity, []ModeChange) {}
func (NopDelegate) TopicChanged(*Client, *Channel, Identity, string)      {}
func (NopDelegate) MOTD(*Client, string)                                  {}
