package core

import "time"

// ClientInfo is one connection reported by CLIENT LIST. All raw fields are
// kept in Fields.
type ClientInfo struct {
	ID     int64
	Addr   string
	LAddr  string
	Name   string
	Age    time.Duration
	Idle   time.Duration
	Flags  string
	DB     int
	Sub    int64
	PSub   int64
	Multi  int64
	Cmd    string
	User   string
	Fields map[string]string
}
