package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/args"
	"github.com/buession/redis/command"
	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

type GeoCommands interface {
	GeoAdd(ctx context.Context, key string, arg args.GeoAddArgument, members ...core.GeoMember) (int64, error)
	GeoDist(ctx context.Context, key, member1, member2 string, unit core.GeoUnit) (float64, error)
	GeoHash(ctx context.Context, key string, members ...string) ([]string, error)
	GeoPos(ctx context.Context, key string, members ...string) ([]*core.Geo, error)
	GeoRadius(ctx context.Context, key string, longitude, latitude, radius float64, unit core.GeoUnit, arg args.GeoRadiusArgument) ([]core.GeoRadius, error)
	GeoRadiusByMember(ctx context.Context, key, member string, radius float64, unit core.GeoUnit, arg args.GeoRadiusArgument) ([]core.GeoRadius, error)
	GeoSearch(ctx context.Context, key string, arg args.GeoSearchArgument) ([]core.GeoRadius, error)
	GeoSearchStore(ctx context.Context, key, destKey string, arg args.GeoSearchArgument, storeDist bool) (int64, error)
}

var _ GeoCommands = (*Client)(nil)

// unitKeyword encodes unit. Every geo distance needs an explicit unit.
func unitKeyword(unit core.GeoUnit) (string, error) {
	kw, ok := convert.GeoUnitKeyword(unit)
	return kw, checkArgument("unit", unit, ok)
}

func checkGeoRadius(arg args.GeoRadiusArgument) error {
	return checkArgument("order", arg.Order, convert.ValidOrder(arg.Order))
}

func checkGeoSearch(arg args.GeoSearchArgument) error {
	if _, err := unitKeyword(arg.Unit); err != nil {
		return err
	}
	return checkArgument("order", arg.Order, convert.ValidOrder(arg.Order))
}

func (c *Client) GeoAdd(ctx context.Context, key string, arg args.GeoAddArgument, members ...core.GeoMember) (int64, error) {
	if err := checkArgument("condition", arg.Condition, convert.ValidCondition(arg.Condition)); err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Add("members", members).Build()
	return execute(ctx, c, command.GeoAdd, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		tokens := convert.GeoAddTokens(arg)
		if len(tokens) == 0 {
			return rc.GeoAdd(ctx, key, convert.Slice(members, convert.GeoMemberToNative)...)
		}
		cmdArgs := append([]interface{}{"geoadd", key}, tokens...)
		for _, m := range members {
			cmdArgs = append(cmdArgs, m.Longitude, m.Latitude, m.Member)
		}
		cmd := goredis.NewIntCmd(ctx, cmdArgs...)
		_ = rc.Process(ctx, cmd)
		return cmd
	}, int64Value)
}

// GeoDist returns the distance between two members, or Nil if either is
// missing.
func (c *Client) GeoDist(ctx context.Context, key, member1, member2 string, unit core.GeoUnit) (float64, error) {
	u, err := unitKeyword(unit)
	if err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("key", key).Add("member1", member1).Add("member2", member2).Add("unit", u).Build()
	return execute(ctx, c, command.GeoDist, params, func(ctx context.Context, rc nativeClient) *goredis.FloatCmd {
		return rc.GeoDist(ctx, key, member1, member2, u)
	}, floatValue)
}

func (c *Client) GeoHash(ctx context.Context, key string, members ...string) ([]string, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.GeoHash, params, func(ctx context.Context, rc nativeClient) *goredis.StringSliceCmd {
		return rc.GeoHash(ctx, key, members...)
	}, stringsValue)
}

// GeoPos returns the coordinates of members; missing members are nil.
func (c *Client) GeoPos(ctx context.Context, key string, members ...string) ([]*core.Geo, error) {
	params := command.NewBuilder().Key("key", key).Add("members", members).Build()
	return execute(ctx, c, command.GeoPos, params, func(ctx context.Context, rc nativeClient) *goredis.GeoPosCmd {
		return rc.GeoPos(ctx, key, members...)
	}, func(cmd *goredis.GeoPosCmd) ([]*core.Geo, error) {
		return convert.Slice(cmd.Val(), convert.GeoFromNative), nil
	})
}

func geoRadiusReply(arg args.GeoRadiusArgument) func(*goredis.Cmd) ([]core.GeoRadius, error) {
	return func(cmd *goredis.Cmd) ([]core.GeoRadius, error) {
		return convert.ParseGeoRadiusReply(cmd.Val(), arg)
	}
}

// GeoRadius returns the members within radius of a point. It issues the
// read-only GEORADIUS_RO so it can be routed to replicas.
func (c *Client) GeoRadius(ctx context.Context, key string, longitude, latitude, radius float64, unit core.GeoUnit, arg args.GeoRadiusArgument) ([]core.GeoRadius, error) {
	u, err := unitKeyword(unit)
	if err != nil {
		return nil, err
	}
	if err := checkGeoRadius(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Key("key", key).Add("longitude", longitude).Add("latitude", latitude).
		Add("radius", radius).Add("unit", u).Flatten(arg).Build()
	return execute(ctx, c, command.GeoRadius, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		cmdArgs := []interface{}{"georadius_ro", key, longitude, latitude, radius, u}
		return rc.Do(ctx, append(cmdArgs, convert.GeoRadiusTokens(arg)...)...)
	}, geoRadiusReply(arg))
}

func (c *Client) GeoRadiusByMember(ctx context.Context, key, member string, radius float64, unit core.GeoUnit, arg args.GeoRadiusArgument) ([]core.GeoRadius, error) {
	u, err := unitKeyword(unit)
	if err != nil {
		return nil, err
	}
	if err := checkGeoRadius(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Key("key", key).Add("member", member).
		Add("radius", radius).Add("unit", u).Flatten(arg).Build()
	return execute(ctx, c, command.GeoRadiusByMember, params, func(ctx context.Context, rc nativeClient) *goredis.Cmd {
		cmdArgs := []interface{}{"georadiusbymember_ro", key, member, radius, u}
		return rc.Do(ctx, append(cmdArgs, convert.GeoRadiusTokens(arg)...)...)
	}, geoRadiusReply(arg))
}

func (c *Client) GeoSearch(ctx context.Context, key string, arg args.GeoSearchArgument) ([]core.GeoRadius, error) {
	if err := checkGeoSearch(arg); err != nil {
		return nil, err
	}
	params := command.NewBuilder().Key("key", key).Flatten(arg).Build()
	return execute(ctx, c, command.GeoSearch, params, func(ctx context.Context, rc nativeClient) *goredis.GeoSearchLocationCmd {
		return rc.GeoSearchLocation(ctx, key, convert.GeoSearchToNative(arg))
	}, func(cmd *goredis.GeoSearchLocationCmd) ([]core.GeoRadius, error) {
		return convert.Slice(cmd.Val(), func(loc goredis.GeoLocation) core.GeoRadius {
			return convert.GeoRadiusFromNative(loc, arg.WithCoord)
		}), nil
	})
}

// GeoSearchStore stores the matching members at destKey, with their
// distances as scores when storeDist is set.
func (c *Client) GeoSearchStore(ctx context.Context, key, destKey string, arg args.GeoSearchArgument, storeDist bool) (int64, error) {
	if err := checkGeoSearch(arg); err != nil {
		return 0, err
	}
	params := command.NewBuilder().Key("key", key).Key("destKey", destKey).Flatten(arg).Add("storeDist", storeDist).Build()
	return execute(ctx, c, command.GeoSearchStore, params, func(ctx context.Context, rc nativeClient) *goredis.IntCmd {
		return rc.GeoSearchStore(ctx, key, destKey, convert.GeoSearchStoreToNative(arg, storeDist))
	}, int64Value)
}
