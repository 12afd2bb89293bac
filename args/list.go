package args

// LPosArgument holds the options of LPOS.
type LPosArgument struct {
	Rank   int64
	MaxLen int64
}

func (a LPosArgument) Flatten(add func(string, interface{})) {
	if a.Rank != 0 {
		add("rank", a.Rank)
	}
	if a.MaxLen > 0 {
		add("maxlen", a.MaxLen)
	}
}
