package args

import "github.com/buession/redis/core"

// ZAddArgument holds the options of ZADD.
type ZAddArgument struct {
	Condition  Condition
	Comparison Comparison
	CH         bool
}

func (a ZAddArgument) Flatten(add func(string, interface{})) {
	if a.Condition != ConditionNone {
		add("condition", a.Condition.String())
	}
	if a.Comparison != ComparisonNone {
		add("comparison", a.Comparison.String())
	}
	if a.CH {
		add("ch", true)
	}
}

// ZStoreArgument holds the weights and aggregation of ZUNION/ZINTER.
type ZStoreArgument struct {
	Weights   []float64
	Aggregate core.Aggregate
}

func (a ZStoreArgument) Flatten(add func(string, interface{})) {
	if len(a.Weights) > 0 {
		add("weights", a.Weights)
	}
	switch a.Aggregate {
	case core.AggregateSum:
		add("aggregate", "sum")
	case core.AggregateMin:
		add("aggregate", "min")
	case core.AggregateMax:
		add("aggregate", "max")
	}
}
