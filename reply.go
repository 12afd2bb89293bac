package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

func stringValue(cmd *goredis.StringCmd) (string, error)         { return cmd.Val(), nil }
func statusValue(cmd *goredis.StatusCmd) (string, error)         { return cmd.Val(), nil }
func int64Value(cmd *goredis.IntCmd) (int64, error)              { return cmd.Val(), nil }
func floatValue(cmd *goredis.FloatCmd) (float64, error)          { return cmd.Val(), nil }
func boolValue(cmd *goredis.BoolCmd) (bool, error)               { return cmd.Val(), nil }
func stringsValue(cmd *goredis.StringSliceCmd) ([]string, error) { return cmd.Val(), nil }
func sliceValue(cmd *goredis.SliceCmd) ([]interface{}, error)    { return cmd.Val(), nil }
func boolsValue(cmd *goredis.BoolSliceCmd) ([]bool, error)       { return cmd.Val(), nil }
func int64sValue(cmd *goredis.IntSliceCmd) ([]int64, error)      { return cmd.Val(), nil }
func stringMapValue(cmd *goredis.MapStringStringCmd) (map[string]string, error) {
	return cmd.Val(), nil
}

func okStatus(cmd *goredis.StatusCmd) (core.Status, error) {
	return convert.StatusFromOK(cmd.Val()), nil
}

func boolStatus(cmd *goredis.BoolCmd) (core.Status, error) {
	return convert.StatusFromBool(cmd.Val()), nil
}

func countStatus(cmd *goredis.IntCmd) (core.Status, error) {
	return convert.StatusFromCount(cmd.Val()), nil
}

func ttlSeconds(cmd *goredis.DurationCmd) (int64, error) {
	return convert.TTLSeconds(cmd.Val()), nil
}

func ttlMilliseconds(cmd *goredis.DurationCmd) (int64, error) {
	return convert.TTLMilliseconds(cmd.Val()), nil
}

func tuplesValue(cmd *goredis.ZSliceCmd) ([]core.Tuple, error) {
	return convert.Slice(cmd.Val(), convert.TupleFromNative), nil
}

func keyedTupleValue(cmd *goredis.ZWithKeyCmd) (core.KeyedTuple, error) {
	return convert.KeyedTupleFromNative(cmd.Val()), nil
}

func keyScanPage(cmd *goredis.ScanCmd) (core.ScanResult[[]string], error) {
	keys, cursor := cmd.Val()
	return core.NewScanResult(convert.FormatCursor(cursor), keys), nil
}

func hashScanPage(cmd *goredis.ScanCmd) (core.ScanResult[map[string]string], error) {
	flat, cursor := cmd.Val()
	m, err := convert.PairsToMap(flat)
	if err != nil {
		return core.ScanResult[map[string]string]{}, err
	}
	return core.NewScanResult(convert.FormatCursor(cursor), m), nil
}

func tupleScanPage(cmd *goredis.ScanCmd) (core.ScanResult[[]core.Tuple], error) {
	flat, cursor := cmd.Val()
	tuples, err := convert.ScanTuples(flat)
	if err != nil {
		return core.ScanResult[[]core.Tuple]{}, err
	}
	return core.NewScanResult(convert.FormatCursor(cursor), tuples), nil
}

// Decoders for commands issued with Do.

func doText(cmd *goredis.Cmd) (string, error) { return cmd.Text() }
func doInt64(cmd *goredis.Cmd) (int64, error) { return cmd.Int64() }
func doInt64s(cmd *goredis.Cmd) ([]int64, error) {
	return cmd.Int64Slice()
}

func doOK(cmd *goredis.Cmd) (core.Status, error) {
	s, err := cmd.Text()
	if err != nil {
		return core.StatusFailure, err
	}
	return convert.StatusFromOK(s), nil
}

// doNilableOK maps a nil reply, as sent for SET NX/XX that did not apply,
// to StatusFailure.
func doNilableOK(cmd *goredis.Cmd) (core.Status, error) {
	if cmd.Err() == goredis.Nil {
		return core.StatusFailure, nil
	}
	return doOK(cmd)
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func milliseconds(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}
