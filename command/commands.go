package command

// Key commands.
var (
	Del            = cmd("DEL", GroupKey)
	Unlink         = cmd("UNLINK", GroupKey)
	Dump           = ro("DUMP", GroupKey)
	Exists         = ro("EXISTS", GroupKey)
	Expire         = cmd("EXPIRE", GroupKey)
	ExpireAt       = cmd("EXPIREAT", GroupKey)
	ExpireTime     = ro("EXPIRETIME", GroupKey)
	PExpire        = cmd("PEXPIRE", GroupKey)
	PExpireAt      = cmd("PEXPIREAT", GroupKey)
	PExpireTime    = ro("PEXPIRETIME", GroupKey)
	Persist        = cmd("PERSIST", GroupKey)
	TTL            = ro("TTL", GroupKey)
	PTTL           = ro("PTTL", GroupKey)
	Keys           = ro("KEYS", GroupKey)
	Move           = cmd("MOVE", GroupKey)
	Copy           = cmd("COPY", GroupKey)
	ObjectEncoding = sub("OBJECT", "ENCODING", GroupKey, true)
	ObjectFreq     = sub("OBJECT", "FREQ", GroupKey, true)
	ObjectIdleTime = sub("OBJECT", "IDLETIME", GroupKey, true)
	ObjectRefCount = sub("OBJECT", "REFCOUNT", GroupKey, true)
	RandomKey      = ro("RANDOMKEY", GroupKey)
	Rename         = cmd("RENAME", GroupKey)
	RenameNX       = cmd("RENAMENX", GroupKey)
	Restore        = cmd("RESTORE", GroupKey)
	Migrate        = cmd("MIGRATE", GroupKey)
	Sort           = cmd("SORT", GroupKey)
	SortRO         = ro("SORT_RO", GroupKey)
	Touch          = ro("TOUCH", GroupKey)
	Type           = ro("TYPE", GroupKey)
	Scan           = ro("SCAN", GroupKey)
	Wait           = cmd("WAIT", GroupKey)
)

// String commands.
var (
	Append      = cmd("APPEND", GroupString)
	Decr        = cmd("DECR", GroupString)
	DecrBy      = cmd("DECRBY", GroupString)
	Get         = ro("GET", GroupString)
	GetDel      = cmd("GETDEL", GroupString)
	GetEx       = cmd("GETEX", GroupString)
	GetRange    = ro("GETRANGE", GroupString)
	GetSet      = cmd("GETSET", GroupString)
	Incr        = cmd("INCR", GroupString)
	IncrBy      = cmd("INCRBY", GroupString)
	IncrByFloat = cmd("INCRBYFLOAT", GroupString)
	MGet        = ro("MGET", GroupString)
	MSet        = cmd("MSET", GroupString)
	MSetNX      = cmd("MSETNX", GroupString)
	Set         = cmd("SET", GroupString)
	SetEx       = cmd("SETEX", GroupString)
	PSetEx      = cmd("PSETEX", GroupString)
	SetNX       = cmd("SETNX", GroupString)
	SetRange    = cmd("SETRANGE", GroupString)
	StrLen      = ro("STRLEN", GroupString)
)

// Bitmap commands.
var (
	SetBit   = cmd("SETBIT", GroupBitmap)
	GetBit   = ro("GETBIT", GroupBitmap)
	BitCount = ro("BITCOUNT", GroupBitmap)
	BitOp    = cmd("BITOP", GroupBitmap)
	BitPos   = ro("BITPOS", GroupBitmap)
	BitField = cmd("BITFIELD", GroupBitmap)
)

// Hash commands.
var (
	HDel         = cmd("HDEL", GroupHash)
	HExists      = ro("HEXISTS", GroupHash)
	HGet         = ro("HGET", GroupHash)
	HGetAll      = ro("HGETALL", GroupHash)
	HIncrBy      = cmd("HINCRBY", GroupHash)
	HIncrByFloat = cmd("HINCRBYFLOAT", GroupHash)
	HKeys        = ro("HKEYS", GroupHash)
	HLen         = ro("HLEN", GroupHash)
	HMGet        = ro("HMGET", GroupHash)
	HMSet        = cmd("HMSET", GroupHash)
	HSet         = cmd("HSET", GroupHash)
	HSetNX       = cmd("HSETNX", GroupHash)
	HStrLen      = ro("HSTRLEN", GroupHash)
	HVals        = ro("HVALS", GroupHash)
	HRandField   = ro("HRANDFIELD", GroupHash)
	HScan        = ro("HSCAN", GroupHash)
)

// List commands.
var (
	BLPop      = cmd("BLPOP", GroupList)
	BRPop      = cmd("BRPOP", GroupList)
	BRPopLPush = cmd("BRPOPLPUSH", GroupList)
	BLMove     = cmd("BLMOVE", GroupList)
	LIndex     = ro("LINDEX", GroupList)
	LInsert    = cmd("LINSERT", GroupList)
	LLen       = ro("LLEN", GroupList)
	LMove      = cmd("LMOVE", GroupList)
	LPop       = cmd("LPOP", GroupList)
	LPos       = ro("LPOS", GroupList)
	LPush      = cmd("LPUSH", GroupList)
	LPushX     = cmd("LPUSHX", GroupList)
	LRange     = ro("LRANGE", GroupList)
	LRem       = cmd("LREM", GroupList)
	LSet       = cmd("LSET", GroupList)
	LTrim      = cmd("LTRIM", GroupList)
	RPop       = cmd("RPOP", GroupList)
	RPopLPush  = cmd("RPOPLPUSH", GroupList)
	RPush      = cmd("RPUSH", GroupList)
	RPushX     = cmd("RPUSHX", GroupList)
)

// Set commands.
var (
	SAdd        = cmd("SADD", GroupSet)
	SCard       = ro("SCARD", GroupSet)
	SDiff       = ro("SDIFF", GroupSet)
	SDiffStore  = cmd("SDIFFSTORE", GroupSet)
	SInter      = ro("SINTER", GroupSet)
	SInterCard  = ro("SINTERCARD", GroupSet)
	SInterStore = cmd("SINTERSTORE", GroupSet)
	SIsMember   = ro("SISMEMBER", GroupSet)
	SMIsMember  = ro("SMISMEMBER", GroupSet)
	SMembers    = ro("SMEMBERS", GroupSet)
	SMove       = cmd("SMOVE", GroupSet)
	SPop        = cmd("SPOP", GroupSet)
	SRandMember = ro("SRANDMEMBER", GroupSet)
	SRem        = cmd("SREM", GroupSet)
	SScan       = ro("SSCAN", GroupSet)
	SUnion      = ro("SUNION", GroupSet)
	SUnionStore = cmd("SUNIONSTORE", GroupSet)
)

// Sorted set commands.
var (
	ZAdd             = cmd("ZADD", GroupSortedSet)
	ZCard            = ro("ZCARD", GroupSortedSet)
	ZCount           = ro("ZCOUNT", GroupSortedSet)
	ZDiff            = ro("ZDIFF", GroupSortedSet)
	ZDiffStore       = cmd("ZDIFFSTORE", GroupSortedSet)
	ZIncrBy          = cmd("ZINCRBY", GroupSortedSet)
	ZInter           = ro("ZINTER", GroupSortedSet)
	ZInterStore      = cmd("ZINTERSTORE", GroupSortedSet)
	ZLexCount        = ro("ZLEXCOUNT", GroupSortedSet)
	ZMScore          = ro("ZMSCORE", GroupSortedSet)
	ZPopMax          = cmd("ZPOPMAX", GroupSortedSet)
	ZPopMin          = cmd("ZPOPMIN", GroupSortedSet)
	BZPopMax         = cmd("BZPOPMAX", GroupSortedSet)
	BZPopMin         = cmd("BZPOPMIN", GroupSortedSet)
	ZRandMember      = ro("ZRANDMEMBER", GroupSortedSet)
	ZRange           = ro("ZRANGE", GroupSortedSet)
	ZRangeByScore    = ro("ZRANGEBYSCORE", GroupSortedSet)
	ZRangeByLex      = ro("ZRANGEBYLEX", GroupSortedSet)
	ZRank            = ro("ZRANK", GroupSortedSet)
	ZRem             = cmd("ZREM", GroupSortedSet)
	ZRemRangeByRank  = cmd("ZREMRANGEBYRANK", GroupSortedSet)
	ZRemRangeByScore = cmd("ZREMRANGEBYSCORE", GroupSortedSet)
	ZRemRangeByLex   = cmd("ZREMRANGEBYLEX", GroupSortedSet)
	ZRevRange        = ro("ZREVRANGE", GroupSortedSet)
	ZRevRangeByScore = ro("ZREVRANGEBYSCORE", GroupSortedSet)
	ZRevRangeByLex   = ro("ZREVRANGEBYLEX", GroupSortedSet)
	ZRevRank         = ro("ZREVRANK", GroupSortedSet)
	ZScore           = ro("ZSCORE", GroupSortedSet)
	ZScan            = ro("ZSCAN", GroupSortedSet)
	ZUnion           = ro("ZUNION", GroupSortedSet)
	ZUnionStore      = cmd("ZUNIONSTORE", GroupSortedSet)
)

// Geo commands.
var (
	GeoAdd            = cmd("GEOADD", GroupGeo)
	GeoDist           = ro("GEODIST", GroupGeo)
	GeoHash           = ro("GEOHASH", GroupGeo)
	GeoPos            = ro("GEOPOS", GroupGeo)
	GeoRadius         = ro("GEORADIUS_RO", GroupGeo)
	GeoRadiusByMember = ro("GEORADIUSBYMEMBER_RO", GroupGeo)
	GeoSearch         = ro("GEOSEARCH", GroupGeo)
	GeoSearchStore    = cmd("GEOSEARCHSTORE", GroupGeo)
)

// HyperLogLog commands.
var (
	PFAdd   = cmd("PFADD", GroupHyperLogLog)
	PFCount = ro("PFCOUNT", GroupHyperLogLog)
	PFMerge = cmd("PFMERGE", GroupHyperLogLog)
)

// Connection commands.
var (
	Ping          = ro("PING", GroupConnection)
	Echo          = ro("ECHO", GroupConnection)
	ClientID      = sub("CLIENT", "ID", GroupConnection, true)
	ClientGetName = sub("CLIENT", "GETNAME", GroupConnection, true)
	ClientList    = sub("CLIENT", "LIST", GroupConnection, true)
	ClientKill    = sub("CLIENT", "KILL", GroupConnection, false)
	ClientPause   = sub("CLIENT", "PAUSE", GroupConnection, false)
	ClientUnpause = sub("CLIENT", "UNPAUSE", GroupConnection, false)
	ClientUnblock = sub("CLIENT", "UNBLOCK", GroupConnection, false)
)

// Server commands.
var (
	BgRewriteAOF    = cmd("BGREWRITEAOF", GroupServer)
	BgSave          = cmd("BGSAVE", GroupServer)
	ConfigGet       = sub("CONFIG", "GET", GroupServer, true)
	ConfigSet       = sub("CONFIG", "SET", GroupServer, false)
	ConfigResetStat = sub("CONFIG", "RESETSTAT", GroupServer, false)
	ConfigRewrite   = sub("CONFIG", "REWRITE", GroupServer, false)
	DBSize          = ro("DBSIZE", GroupServer)
	FlushAll        = cmd("FLUSHALL", GroupServer)
	FlushDB         = cmd("FLUSHDB", GroupServer)
	Info            = ro("INFO", GroupServer)
	LastSave        = ro("LASTSAVE", GroupServer)
	MemoryUsage     = sub("MEMORY", "USAGE", GroupServer, true)
	Save            = cmd("SAVE", GroupServer)
	SlowLogGet      = sub("SLOWLOG", "GET", GroupServer, true)
	SlowLogLen      = sub("SLOWLOG", "LEN", GroupServer, true)
	SlowLogReset    = sub("SLOWLOG", "RESET", GroupServer, false)
	SwapDB          = cmd("SWAPDB", GroupServer)
	Time            = ro("TIME", GroupServer)
	ReplicaOf       = cmd("REPLICAOF", GroupServer)
)

// Cluster commands.
var (
	ClusterAddSlots            = sub("CLUSTER", "ADDSLOTS", GroupCluster, false)
	ClusterBumpEpoch           = sub("CLUSTER", "BUMPEPOCH", GroupCluster, false)
	ClusterCountFailureReports = sub("CLUSTER", "COUNT-FAILURE-REPORTS", GroupCluster, true)
	ClusterCountKeysInSlot     = sub("CLUSTER", "COUNTKEYSINSLOT", GroupCluster, true)
	ClusterDelSlots            = sub("CLUSTER", "DELSLOTS", GroupCluster, false)
	ClusterFailover            = sub("CLUSTER", "FAILOVER", GroupCluster, false)
	ClusterForget              = sub("CLUSTER", "FORGET", GroupCluster, false)
	ClusterGetKeysInSlot       = sub("CLUSTER", "GETKEYSINSLOT", GroupCluster, true)
	ClusterInfo                = sub("CLUSTER", "INFO", GroupCluster, true)
	ClusterKeySlot             = sub("CLUSTER", "KEYSLOT", GroupCluster, true)
	ClusterMeet                = sub("CLUSTER", "MEET", GroupCluster, false)
	ClusterMyID                = sub("CLUSTER", "MYID", GroupCluster, true)
	ClusterNodes               = sub("CLUSTER", "NODES", GroupCluster, true)
	ClusterReplicas            = sub("CLUSTER", "REPLICAS", GroupCluster, true)
	ClusterReplicate           = sub("CLUSTER", "REPLICATE", GroupCluster, false)
	ClusterReset               = sub("CLUSTER", "RESET", GroupCluster, false)
	ClusterSaveConfig          = sub("CLUSTER", "SAVECONFIG", GroupCluster, false)
	ClusterSlots               = sub("CLUSTER", "SLOTS", GroupCluster, true)
)

// Scripting commands.
var (
	Eval         = cmd("EVAL", GroupScripting)
	EvalSha      = cmd("EVALSHA", GroupScripting)
	EvalRO       = ro("EVAL_RO", GroupScripting)
	EvalShaRO    = ro("EVALSHA_RO", GroupScripting)
	ScriptExists = sub("SCRIPT", "EXISTS", GroupScripting, true)
	ScriptFlush  = sub("SCRIPT", "FLUSH", GroupScripting, false)
	ScriptKill   = sub("SCRIPT", "KILL", GroupScripting, false)
	ScriptLoad   = sub("SCRIPT", "LOAD", GroupScripting, false)
)

// Pub/Sub commands.
var (
	Publish        = cmd("PUBLISH", GroupPubSub)
	Subscribe      = cmd("SUBSCRIBE", GroupPubSub)
	PSubscribe     = cmd("PSUBSCRIBE", GroupPubSub)
	PubSubChannels = sub("PUBSUB", "CHANNELS", GroupPubSub, true)
	PubSubNumSub   = sub("PUBSUB", "NUMSUB", GroupPubSub, true)
	PubSubNumPat   = sub("PUBSUB", "NUMPAT", GroupPubSub, true)
)

// Stream commands.
var (
	XAdd          = cmd("XADD", GroupStream)
	XLen          = ro("XLEN", GroupStream)
	XDel          = cmd("XDEL", GroupStream)
	XRange        = ro("XRANGE", GroupStream)
	XRevRange     = ro("XREVRANGE", GroupStream)
	XTrim         = cmd("XTRIM", GroupStream)
	XRead         = ro("XREAD", GroupStream)
	XReadGroup    = cmd("XREADGROUP", GroupStream)
	XGroupCreate  = sub("XGROUP", "CREATE", GroupStream, false)
	XGroupDestroy = sub("XGROUP", "DESTROY", GroupStream, false)
	XAck          = cmd("XACK", GroupStream)
)

// Sentinel commands.
var (
	SentinelGetMasterAddrByName = sub("SENTINEL", "GET-MASTER-ADDR-BY-NAME", GroupSentinel, true)
	SentinelMaster              = sub("SENTINEL", "MASTER", GroupSentinel, true)
	SentinelFailover            = sub("SENTINEL", "FAILOVER", GroupSentinel, false)
	SentinelCkQuorum            = sub("SENTINEL", "CKQUORUM", GroupSentinel, true)
	SentinelReset               = sub("SENTINEL", "RESET", GroupSentinel, false)
)

// Transaction commands.
var (
	Multi   = cmd("MULTI", GroupTransaction)
	Exec    = cmd("EXEC", GroupTransaction)
	Discard = cmd("DISCARD", GroupTransaction)
	Watch   = cmd("WATCH", GroupTransaction)
	Unwatch = cmd("UNWATCH", GroupTransaction)
)
