package irc

// IRC replies handled by the client.
const (
	rplWelcome  = "001" // :Welcome message
	rplIsupport = "005" // 1*13<TOKEN[=value]> :are supported by this server

	rplChannelmodeis = "324" // <channel> <modes> <mode params>
	rplNotopic       = "331" // <channel> :No topic set
	rplTopic         = "332" // <channel> <topic>
	rplNamreply      = "353" // <=/*/@> <channel> :1*(@/ /+user)
	rplMotd          = "372" // :- <text>
	rplMotdstart     = "375" // :- <servername> Message of the day -
	rplEndofmotd     = "376" // :End of MOTD command

	errNomotd           = "422" // :MOTD file missing
	errErroneusnickname = "432" // <nick> :Erroneous nickname
	errNicknameinuse    = "433" // <nick> :Nickname in use
)
