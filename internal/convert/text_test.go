package convert_test

import (
	"errors"
	"time"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	goredis "github.com/redis/go-redis/v9"

	"github.com/buession/redis/core"
	"github.com/buession/redis/internal/convert"
)

var _ = Describe("INFO", func() {
	It("should group fields by section", func() {
		info := convert.ParseInfo("# Server\r\nredis_version:7.2.4\r\nprocess_id:1\r\n\r\n# Keyspace\r\ndb0:keys=1,expires=0\r\n")

		v, ok := info.Get("server", "redis_version")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("7.2.4"))

		n, ok := info.Int("server", "process_id")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(int64(1)))

		Expect(info["keyspace"]).To(HaveKeyWithValue("db0", "keys=1,expires=0"))
		_, ok = info.Get("memory", "used_memory")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("CLUSTER INFO", func() {
	It("should parse known and extra fields", func() {
		ci, err := convert.ParseClusterInfo("cluster_state:ok\r\ncluster_slots_assigned:16384\r\ncluster_known_nodes:6\r\ncluster_size:3\r\ntotal_cluster_links_buffer_limit_exceeded:0\r\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(ci.State).To(Equal(core.ClusterStateOK))
		Expect(ci.SlotsAssigned).To(Equal(int64(16384)))
		Expect(ci.KnownNodes).To(Equal(int64(6)))
		Expect(ci.Size).To(Equal(int64(3)))
		Expect(ci.Extra).To(HaveKeyWithValue("total_cluster_links_buffer_limit_exceeded", "0"))
	})

	It("should fail on malformed numbers", func() {
		_, err := convert.ParseClusterInfo("cluster_size:three\r\n")
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("CLUSTER NODES", func() {
	It("should parse nodes and slots", func() {
		text := "07c37dfeb235213a872192d90877d0cd55635b91 127.0.0.1:30004@31004,host-4 slave e7d1eecce10fd6bb5eb35b9f99a514335d9ba9ca 0 1426238317239 4 connected\n" +
			"e7d1eecce10fd6bb5eb35b9f99a514335d9ba9ca 127.0.0.1:30001@31001 myself,master - 0 0 1 connected 0-5460 5500 [5461->-67ed2db8d677e59ec4a4cefb06858cf2a1a89fa1]\n"

		nodes, err := convert.ParseClusterNodes(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes).To(HaveLen(2))

		Expect(nodes[0].Addr).To(Equal("127.0.0.1:30004"))
		Expect(nodes[0].BusPort).To(Equal(31004))
		Expect(nodes[0].Hostname).To(Equal("host-4"))
		Expect(nodes[0].MasterID).To(Equal("e7d1eecce10fd6bb5eb35b9f99a514335d9ba9ca"))
		Expect(nodes[0].PongReceived).To(Equal(int64(1426238317239)))
		Expect(nodes[0].Slots).To(BeEmpty())

		Expect(nodes[1].HasFlag("myself")).To(BeTrue())
		Expect(nodes[1].HasFlag("slave")).To(BeFalse())
		Expect(nodes[1].MasterID).To(BeEmpty())
		Expect(nodes[1].Connected).To(BeTrue())
		Expect(nodes[1].Slots).To(Equal([]core.SlotRange{{Start: 0, End: 5460}, {Start: 5500, End: 5500}}))
	})

	It("should reject short lines", func() {
		_, err := convert.ParseClusterNodes("abc 127.0.0.1:1 master\n")
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("CLIENT LIST", func() {
	It("should parse clients", func() {
		clients, err := convert.ParseClientList("id=3 addr=127.0.0.1:57152 laddr=127.0.0.1:6379 fd=8 name=worker age=12 idle=0 flags=N db=2 sub=0 psub=0 multi=-1 cmd=client|list user=default\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(clients).To(HaveLen(1))

		c := clients[0]
		Expect(c.ID).To(Equal(int64(3)))
		Expect(c.Name).To(Equal("worker"))
		Expect(c.Age).To(Equal(12 * time.Second))
		Expect(c.DB).To(Equal(2))
		Expect(c.Multi).To(Equal(int64(-1)))
		Expect(c.Cmd).To(Equal("client|list"))
		Expect(c.Fields).To(HaveKeyWithValue("fd", "8"))
	})

	It("should reject malformed fields", func() {
		_, err := convert.ParseClientInfo("id=x")
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
		_, err = convert.ParseClientInfo("garbage")
		Expect(errors.Is(err, convert.ErrUnexpectedToken)).To(BeTrue())
	})
})

var _ = Describe("Replies", func() {
	It("should parse BUMPEPOCH", func() {
		b, err := convert.ParseBumpEpoch("BUMPED 5")
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(core.BumpEpoch{Status: core.BumpEpochBumped, Epoch: 5}))

		b, err = convert.ParseBumpEpoch("STILL 7")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Status).To(Equal(core.BumpEpochStill))

		_, err = convert.ParseBumpEpoch("BUMPED")
		Expect(err).To(HaveOccurred())
	})

	It("should map statuses", func() {
		Expect(convert.StatusFromOK("OK")).To(Equal(core.StatusSuccess))
		Expect(convert.StatusFromOK("QUEUED")).To(Equal(core.StatusFailure))
		Expect(convert.StatusFromCount(0)).To(Equal(core.StatusFailure))
		Expect(convert.StatusFromBool(true)).To(Equal(core.StatusSuccess))
	})

	It("should convert cluster slots and streams", func() {
		slot := convert.ClusterSlotFromNative(goredis.ClusterSlot{
			Start: 0, End: 100,
			Nodes: []goredis.ClusterNode{{ID: "a", Addr: ":7000"}},
		})
		Expect(slot).To(Equal(core.ClusterSlot{
			SlotRange: core.SlotRange{Start: 0, End: 100},
			Nodes:     []core.ClusterSlotNode{{ID: "a", Addr: ":7000"}},
		}))

		stream := convert.StreamFromNative(goredis.XStream{
			Stream:   "s",
			Messages: []goredis.XMessage{{ID: "1-0", Values: map[string]interface{}{"k": "v"}}},
		})
		Expect(stream.Name).To(Equal("s"))
		Expect(stream.Entries).To(Equal([]core.StreamEntry{{ID: "1-0", Values: map[string]interface{}{"k": "v"}}}))
	})

	It("should split blocking pop replies", func() {
		kv, err := convert.KeyedValuesFromNative([]string{"list", "a"})
		Expect(err).NotTo(HaveOccurred())
		Expect(kv).To(Equal(core.KeyedValues{Key: "list", Values: []string{"a"}}))

		_, err = convert.KeyedValuesFromNative(nil)
		Expect(err).To(HaveOccurred())
	})
})
