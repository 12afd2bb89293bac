package core

import (
	"strconv"
	"time"
)

// Info is the parsed reply of INFO: section name to key/value pairs.
// Section names are lower case, e.g. "server", "keyspace".
type Info map[string]map[string]string

// Get returns the value of key in section.
func (i Info) Get(section, key string) (string, bool) {
	s, ok := i[section]
	if !ok {
		return "", false
	}
	v, ok := s[key]
	return v, ok
}

// Int returns the value of key in section parsed as an integer.
func (i Info) Int(section, key string) (int64, bool) {
	v, ok := i.Get(section, key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}

// SlowLog is one SLOWLOG GET entry.
type SlowLog struct {
	ID         int64
	Time       time.Time
	Duration   time.Duration
	Args       []string
	ClientAddr string
	ClientName string
}
