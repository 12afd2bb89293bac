package args

import "github.com/buession/redis/core"

// ClientKillArgument holds the filters of CLIENT KILL.
type ClientKillArgument struct {
	ID     int64
	Type   core.ClientType
	User   string
	Addr   string
	LAddr  string
	SkipMe *bool
}

func (a ClientKillArgument) Flatten(add func(string, interface{})) {
	if a.ID > 0 {
		add("id", a.ID)
	}
	if a.Type != core.ClientTypeUnknown {
		add("type", a.Type)
	}
	if a.User != "" {
		add("user", a.User)
	}
	if a.Addr != "" {
		add("addr", a.Addr)
	}
	if a.LAddr != "" {
		add("laddr", a.LAddr)
	}
	if a.SkipMe != nil {
		add("skipme", *a.SkipMe)
	}
}
