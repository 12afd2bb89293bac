package args

// ExpirationKind selects the expiry form of SET and GETEX.
type ExpirationKind uint8

const (
	ExpirationNone ExpirationKind = iota
	ExpirationEX
	ExpirationPX
	ExpirationEXAT
	ExpirationPXAT
	ExpirationKeepTTL
	ExpirationPersist
)

var expirationNames = [...]string{"", "ex", "px", "exat", "pxat", "keepttl", "persist"}

func (k ExpirationKind) String() string {
	if int(k) < len(expirationNames) {
		return expirationNames[k]
	}
	return ""
}

// Expiration is an expiry with its value in seconds, milliseconds or a unix
// timestamp depending on Kind.
type Expiration struct {
	Kind  ExpirationKind
	Value int64
}

// EX expires after seconds.
func EX(seconds int64) Expiration { return Expiration{Kind: ExpirationEX, Value: seconds} }

// PX expires after milliseconds.
func PX(milliseconds int64) Expiration { return Expiration{Kind: ExpirationPX, Value: milliseconds} }

// EXAT expires at a unix time in seconds.
func EXAT(unixSeconds int64) Expiration { return Expiration{Kind: ExpirationEXAT, Value: unixSeconds} }

// PXAT expires at a unix time in milliseconds.
func PXAT(unixMilliseconds int64) Expiration {
	return Expiration{Kind: ExpirationPXAT, Value: unixMilliseconds}
}

// KeepTTL retains the existing time to live (SET only).
func KeepTTL() Expiration { return Expiration{Kind: ExpirationKeepTTL} }

// Persist removes the time to live (GETEX only).
func Persist() Expiration { return Expiration{Kind: ExpirationPersist} }

func (e Expiration) flatten(add func(string, interface{})) {
	switch e.Kind {
	case ExpirationEX, ExpirationPX, ExpirationEXAT, ExpirationPXAT:
		add(e.Kind.String(), e.Value)
	case ExpirationKeepTTL, ExpirationPersist:
		add(e.Kind.String(), true)
	}
}

// Condition is the NX/XX existence condition.
type Condition uint8

const (
	ConditionNone Condition = iota
	NX
	XX
)

func (c Condition) String() string {
	switch c {
	case NX:
		return "NX"
	case XX:
		return "XX"
	}
	return ""
}

// Comparison is the GT/LT score condition of ZADD.
type Comparison uint8

const (
	ComparisonNone Comparison = iota
	GT
	LT
)

func (c Comparison) String() string {
	switch c {
	case GT:
		return "GT"
	case LT:
		return "LT"
	}
	return ""
}
