package convert

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/buession/redis/core"
)

func lines(text string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseInfo parses an INFO reply. Section names are lower-cased; keys that
// appear before any "# Section" header are stored under "".
func ParseInfo(text string) core.Info {
	info := make(core.Info)
	section := ""
	for _, line := range lines(text) {
		if strings.HasPrefix(line, "#") {
			section = strings.ToLower(strings.TrimSpace(line[1:]))
			if info[section] == nil {
				info[section] = make(map[string]string)
			}
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if info[section] == nil {
			info[section] = make(map[string]string)
		}
		info[section][k] = v
	}
	return info
}

// ParseClusterInfo parses a CLUSTER INFO reply.
func ParseClusterInfo(text string) (core.ClusterInfo, error) {
	var ci core.ClusterInfo
	fields := map[string]*int64{
		"cluster_slots_assigned":          &ci.SlotsAssigned,
		"cluster_slots_ok":                &ci.SlotsOK,
		"cluster_slots_pfail":             &ci.SlotsPFail,
		"cluster_slots_fail":              &ci.SlotsFail,
		"cluster_known_nodes":             &ci.KnownNodes,
		"cluster_size":                    &ci.Size,
		"cluster_current_epoch":           &ci.CurrentEpoch,
		"cluster_my_epoch":                &ci.MyEpoch,
		"cluster_stats_messages_sent":     &ci.StatsMessagesSent,
		"cluster_stats_messages_received": &ci.StatsMessagesReceived,
	}
	for _, line := range lines(text) {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return core.ClusterInfo{}, fmt.Errorf("%w: cluster info line %q", ErrUnexpectedToken, line)
		}
		if k == "cluster_state" {
			ci.State = ParseClusterState(v)
			continue
		}
		if dst, ok := fields[k]; ok {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return core.ClusterInfo{}, fmt.Errorf("%w: %s=%q", ErrUnexpectedToken, k, v)
			}
			*dst = n
			continue
		}
		if ci.Extra == nil {
			ci.Extra = make(map[string]string)
		}
		ci.Extra[k] = v
	}
	return ci, nil
}

// ParseClusterNodes parses a CLUSTER NODES reply. Migrating/importing slot
// markers ("[slot->-id]") are skipped.
func ParseClusterNodes(text string) ([]core.ClusterNode, error) {
	nodes := make([]core.ClusterNode, 0)
	for _, line := range lines(text) {
		node, err := parseClusterNode(line)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func parseClusterNode(line string) (core.ClusterNode, error) {
	var n core.ClusterNode
	f := strings.Fields(line)
	if len(f) < 8 {
		return n, fmt.Errorf("%w: cluster node line has %d fields", ErrUnexpectedToken, len(f))
	}
	n.ID = f[0]

	addr, hostname, _ := strings.Cut(f[1], ",")
	n.Hostname = hostname
	addr, bus, hasBus := strings.Cut(addr, "@")
	n.Addr = addr
	if hasBus {
		port, err := strconv.Atoi(bus)
		if err != nil {
			return n, fmt.Errorf("%w: cluster bus port %q", ErrUnexpectedToken, bus)
		}
		n.BusPort = port
	}

	if f[2] != "noflags" {
		n.Flags = strings.Split(f[2], ",")
	}
	if f[3] != "-" {
		n.MasterID = f[3]
	}

	var err error
	if n.PingSent, err = strconv.ParseInt(f[4], 10, 64); err != nil {
		return n, fmt.Errorf("%w: ping-sent %q", ErrUnexpectedToken, f[4])
	}
	if n.PongReceived, err = strconv.ParseInt(f[5], 10, 64); err != nil {
		return n, fmt.Errorf("%w: pong-recv %q", ErrUnexpectedToken, f[5])
	}
	if n.ConfigEpoch, err = strconv.ParseInt(f[6], 10, 64); err != nil {
		return n, fmt.Errorf("%w: config-epoch %q", ErrUnexpectedToken, f[6])
	}
	n.Connected = f[7] == "connected"

	for _, slot := range f[8:] {
		if strings.HasPrefix(slot, "[") {
			continue
		}
		r, err := parseSlotRange(slot)
		if err != nil {
			return n, err
		}
		n.Slots = append(n.Slots, r)
	}
	return n, nil
}

func parseSlotRange(s string) (core.SlotRange, error) {
	from, to, isRange := strings.Cut(s, "-")
	start, err := strconv.Atoi(from)
	if err != nil {
		return core.SlotRange{}, fmt.Errorf("%w: slot %q", ErrUnexpectedToken, s)
	}
	if !isRange {
		return core.SlotRange{Start: start, End: start}, nil
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return core.SlotRange{}, fmt.Errorf("%w: slot %q", ErrUnexpectedToken, s)
	}
	return core.SlotRange{Start: start, End: end}, nil
}

// ParseClientList parses a CLIENT LIST reply, one client per line.
func ParseClientList(text string) ([]core.ClientInfo, error) {
	clients := make([]core.ClientInfo, 0)
	for _, line := range lines(text) {
		c, err := ParseClientInfo(line)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

// ParseClientInfo parses one "id=3 addr=... cmd=client|list" line.
func ParseClientInfo(line string) (core.ClientInfo, error) {
	c := core.ClientInfo{Fields: make(map[string]string)}
	for _, field := range strings.Fields(line) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			return core.ClientInfo{}, fmt.Errorf("%w: client field %q", ErrUnexpectedToken, field)
		}
		c.Fields[k] = v

		var err error
		switch k {
		case "id":
			c.ID, err = strconv.ParseInt(v, 10, 64)
		case "addr":
			c.Addr = v
		case "laddr":
			c.LAddr = v
		case "name":
			c.Name = v
		case "age":
			c.Age, err = parseSeconds(v)
		case "idle":
			c.Idle, err = parseSeconds(v)
		case "flags":
			c.Flags = v
		case "db":
			c.DB, err = strconv.Atoi(v)
		case "sub":
			c.Sub, err = strconv.ParseInt(v, 10, 64)
		case "psub":
			c.PSub, err = strconv.ParseInt(v, 10, 64)
		case "multi":
			c.Multi, err = strconv.ParseInt(v, 10, 64)
		case "cmd":
			c.Cmd = v
		case "user":
			c.User = v
		}
		if err != nil {
			return core.ClientInfo{}, fmt.Errorf("%w: client field %s=%q", ErrUnexpectedToken, k, v)
		}
	}
	return c, nil
}

func parseSeconds(s string) (time.Duration, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

// ParseBumpEpoch parses "BUMPED <epoch>" or "STILL <epoch>".
func ParseBumpEpoch(s string) (core.BumpEpoch, error) {
	status, epoch, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return core.BumpEpoch{}, fmt.Errorf("%w: bumpepoch reply %q", ErrUnexpectedToken, s)
	}
	n, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return core.BumpEpoch{}, fmt.Errorf("%w: bumpepoch reply %q", ErrUnexpectedToken, s)
	}
	return core.BumpEpoch{Status: ParseBumpEpochStatus(status), Epoch: n}, nil
}
