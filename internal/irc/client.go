package irc

import (
	"log"
	"sort"
	"strings"
)

// Sink receives outbound protocol lines, without line terminators. Send must
// not block.
type Sink interface {
	Send(line string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line string)

func (f SinkFunc) Send(line string) {
	f(line)
}

// Client tracks the state of one IRC connection from the client side.
//
// A Client is not safe for concurrent use: the transport must call ReadData
// from a single goroutine, one complete line at a time. A new Client is
// needed for every connection.
type Client struct {
	// Delegate receives events. It may be nil.
	Delegate Delegate

	out    Sink
	logger *log.Logger

	self       Identity
	nickCf     string // casemapped nickname
	realname   string
	registered bool

	isupport  *ISupport
	modeTable ModeTable
	casemap   func(string) string

	channels map[string]*Channel // keyed by casemapped name
	motd     []string            // MOTD lines being received
}

// NewClient creates a client for a connection that has not registered yet.
// out receives every line the client wants to send, and may be nil.
func NewClient(nickname, ident, realname string, out Sink) *Client {
	if out == nil {
		out = SinkFunc(func(string) {})
	}
	c := &Client{
		out:       out,
		logger:    log.Default(),
		self:      Identity{Nick: nickname, User: ident},
		realname:  realname,
		isupport:  NewISupport(),
		modeTable: DefaultModeTable(),
		casemap:   CasemapRFC1459,
		channels:  map[string]*Channel{},
	}
	c.nickCf = c.casemap(nickname)
	return c
}

// SetLogger replaces the logger used to report dropped lines.
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *Client) Nickname() string {
	return c.self.Nick
}

func (c *Client) Ident() string {
	return c.self.User
}

func (c *Client) RealName() string {
	return c.realname
}

// Identity is our own nick!user@host, as far as it is known.
func (c *Client) Identity() Identity {
	return c.self
}

// IsRegistered reports whether the server has welcomed us with 001.
func (c *Client) IsRegistered() bool {
	return c.registered
}

func (c *Client) ISupport() *ISupport {
	return c.isupport
}

// ModeTable returns the channel mode table currently in use.
func (c *Client) ModeTable() ModeTable {
	return c.modeTable
}

func (c *Client) Casemap(name string) string {
	return c.casemap(name)
}

// IsMe reports whether nick is our current nickname.
func (c *Client) IsMe(nick string) bool {
	return c.nickCf == c.casemap(nick)
}

// IsChannel reports whether name starts with one of the server's CHANTYPES.
func (c *Client) IsChannel(name string) bool {
	return name != "" && strings.IndexByte(c.isupport.ChanTypes(), name[0]) >= 0
}

// Channel returns the tracked channel called name.
func (c *Client) Channel(name string) (*Channel, bool) {
	ch, ok := c.channels[c.casemap(name)]
	return ch, ok
}

// Channels returns every tracked channel, sorted by name.
func (c *Client) Channels() []*Channel {
	channels := make([]*Channel, 0, len(c.channels))
	for _, ch := range c.channels {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool {
		return c.casemap(channels[i].Name) < c.casemap(channels[j].Name)
	})
	return channels
}

// AddChannel starts tracking name and returns its Channel. If the channel is
// already tracked, the existing Channel is returned unchanged.
func (c *Client) AddChannel(name string) *Channel {
	channelCf := c.casemap(name)
	if ch, ok := c.channels[channelCf]; ok {
		return ch
	}
	ch := newChannel(name)
	c.channels[channelCf] = ch
	return ch
}

// RemoveChannel stops tracking name.
func (c *Client) RemoveChannel(name string) {
	delete(c.channels, c.casemap(name))
}

// ReadData processes one line received from the server. Malformed lines and
// unknown commands are dropped; ReadData never fails.
func (c *Client) ReadData(line string) {
	msg, err := ParseMessage(line)
	if err != nil {
		c.logger.Printf("Dropping line: %v", err)
		return
	}
	c.handle(&msg)
}

func (c *Client) handle(msg *Message) {
	switch msg.Kind {
	case KindPing:
		c.send("PONG", msg.Last())
	case KindWelcome:
		if c.registered {
			return
		}
		// the first argument is the nick the server settled on, which
		// differs from ours if the transport retried a taken one
		if nick := msg.Arg(0); nick != "" && nick != "*" {
			c.setNick(nick)
		}
		c.registered = true
		if c.Delegate != nil {
			c.Delegate.Registered(c)
		}
	case KindISupport:
		c.updateFeatures(isupportTokens(msg))
	case KindMode:
		args := msg.Args()
		c.handleMode(msg.Sender(), args[0], args[1], args[2:])
	case KindChannelModeIs:
		args := msg.Args()
		c.handleMode(Identity{}, args[1], args[2], args[3:])
	case KindPrivmsg:
		c.handlePrivmsg(msg)
	case KindNotice:
		if c.Delegate != nil {
			c.Delegate.Notice(c, msg.Sender(), msg.Arg(0), msg.Last())
		}
	case KindJoin:
		c.handleJoin(msg)
	case KindPart:
		c.handlePart(msg)
	case KindKick:
		c.handleKick(msg)
	case KindQuit:
		c.handleQuit(msg)
	case KindNick:
		c.handleNick(msg)
	case KindTopic:
		if ch, ok := c.Channel(msg.Arg(0)); ok {
			ch.Topic = msg.Arg(1)
			if c.Delegate != nil {
				c.Delegate.TopicChanged(c, ch, msg.Sender(), ch.Topic)
			}
		}
	case KindTopicReply:
		if ch, ok := c.Channel(msg.Arg(1)); ok {
			ch.Topic = msg.Arg(2)
		}
	case KindNoTopic:
		if ch, ok := c.Channel(msg.Arg(1)); ok {
			ch.Topic = ""
		}
	case KindNamReply:
		c.handleNames(msg.Arg(2), msg.Arg(3))
	case KindMOTDStart:
		c.motd = c.motd[:0]
	case KindMOTD:
		c.motd = append(c.motd, strings.TrimPrefix(msg.Last(), "- "))
	case KindEndOfMOTD:
		motd := strings.Join(c.motd, "\n")
		c.motd = nil
		if c.Delegate != nil {
			c.Delegate.MOTD(c, motd)
		}
	case KindNoMOTD:
		c.motd = nil
	case KindNicknameInUse, KindErroneousNickname:
		if !c.registered {
			c.setNick(msg.Arg(1) + "_")
			c.send("NICK", c.self.Nick)
		}
	default:
		// Unknown commands are expected from servers newer than us.
	}
}
