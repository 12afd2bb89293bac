package args

// SetArgument holds the options of SET.
type SetArgument struct {
	Expiration Expiration
	Condition  Condition
	// Get returns the old value (SET ... GET).
	Get bool
}

func (a SetArgument) Flatten(add func(string, interface{})) {
	a.Expiration.flatten(add)
	if a.Condition != ConditionNone {
		add("condition", a.Condition.String())
	}
	if a.Get {
		add("get", true)
	}
}

// GetExArgument holds the options of GETEX.
type GetExArgument struct {
	Expiration Expiration
}

func (a GetExArgument) Flatten(add func(string, interface{})) {
	a.Expiration.flatten(add)
}
