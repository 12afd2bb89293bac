package convert

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
)

// LPosToNative converts LPOS options.
func LPosToNative(a args.LPosArgument) goredis.LPosArgs {
	return goredis.LPosArgs{Rank: a.Rank, MaxLen: a.MaxLen}
}

// LPosFromNative is the inverse of LPosToNative.
func LPosFromNative(a goredis.LPosArgs) args.LPosArgument {
	return args.LPosArgument{Rank: a.Rank, MaxLen: a.MaxLen}
}
