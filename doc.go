/*
Package redis is a command façade over go-redis that runs one uniform
command set against a standalone server, a sentinel-managed master, a
cluster or a client-side sharded ring.

Create a client for the deployment at hand:

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	status, err := client.Set(ctx, "key", "value")

Every command runs in the client's current mode. In ModeNormal the reply
is returned at once. OpenPipeline and Multi switch to ModePipeline and
ModeTransaction, where commands return zero values and their decoded
replies are collected in order by ClosePipeline or Exec:

	if err := client.OpenPipeline(); err != nil {
		return err
	}
	client.Incr(ctx, "counter")
	client.Get(ctx, "key")
	values, err := client.ClosePipeline(ctx)

Mode state belongs to a handle. Use Client.Handle to give each goroutine
its own pipelines and transactions over the shared connection pool.

Cluster transactions are restricted to the hash slot of their first key,
and the sharded ring rejects WATCH and MULTI. Multi-key commands must
hash to one slot on a cluster and to one shard on a ring; violations are
reported as *IllegalStateError before anything is sent.
*/
package redis
