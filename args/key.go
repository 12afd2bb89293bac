package args

import "github.com/buession/redis/core"

// SortArgument holds the options of SORT and SORT_RO.
type SortArgument struct {
	By    string
	Limit *core.Limit
	Get   []string
	Order core.Order
	Alpha bool
}

func (a SortArgument) Flatten(add func(string, interface{})) {
	if a.By != "" {
		add("by", a.By)
	}
	if a.Limit != nil {
		add("limit", *a.Limit)
	}
	if len(a.Get) > 0 {
		add("get", a.Get)
	}
	if a.Order != core.OrderUnspecified {
		add("order", a.Order.String())
	}
	if a.Alpha {
		add("alpha", true)
	}
}

// RestoreArgument holds the options of RESTORE.
type RestoreArgument struct {
	Replace bool
	AbsTTL  bool
	// IdleTime in seconds; zero omits IDLETIME.
	IdleTime int64
	// Freq is the LFU frequency; zero omits FREQ.
	Freq int64
}

func (a RestoreArgument) Flatten(add func(string, interface{})) {
	if a.Replace {
		add("replace", true)
	}
	if a.AbsTTL {
		add("absttl", true)
	}
	if a.IdleTime > 0 {
		add("idletime", a.IdleTime)
	}
	if a.Freq > 0 {
		add("freq", a.Freq)
	}
}

// MigrateArgument holds the options of MIGRATE. A Password without Username
// authenticates with AUTH, both together with AUTH2.
type MigrateArgument struct {
	Copy     bool
	Replace  bool
	Username string
	Password string
}

func (a MigrateArgument) Flatten(add func(string, interface{})) {
	if a.Copy {
		add("copy", true)
	}
	if a.Replace {
		add("replace", true)
	}
	if a.Username != "" {
		add("username", a.Username)
	}
	if a.Password != "" {
		add("password", "******")
	}
}

// ScanArgument holds the options of the SCAN family. Type only applies to SCAN.
type ScanArgument struct {
	Match string
	Count int64
	Type  core.Type
}

func (a ScanArgument) Flatten(add func(string, interface{})) {
	if a.Match != "" {
		add("match", a.Match)
	}
	if a.Count > 0 {
		add("count", a.Count)
	}
	if a.Type != core.TypeUnknown {
		add("type", a.Type.String())
	}
}
