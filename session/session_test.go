package session

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ticksched/sched"
)

type tickCounter struct {
	count int
}

func (t *tickCounter) Run() error {
	t.count++
	return nil
}

type puppet struct {
	name string
}

func (p *puppet) Name() string { return p.name }

var _ = Describe("Session", func() {
	var s *Session

	BeforeEach(func() {
		s = MakeBuilder().WithoutMonitoring().Build()
		s.Init(0)
	})

	AfterEach(func() {
		s.Terminate()

		os.Remove("ticksched_" + s.ID() + ".sqlite3")
	})

	It("should drive registered tasks across ticks", func() {
		task := &tickCounter{}
		err := s.Scheduler().Register(task, 3, &puppet{name: "p1"})
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Advance(9)).To(Succeed())

		Expect(task.count).To(Equal(3))
		Expect(s.NextTick()).To(Equal(sched.Tick(9)))
		Expect(s.Scheduler().LastTick()).To(Equal(sched.Tick(8)))
	})

	It("should restart from the init tick", func() {
		task := &tickCounter{}
		err := s.Scheduler().Register(task, 1, &puppet{name: "p1"})
		Expect(err).ToNot(HaveOccurred())

		Expect(s.Advance(2)).To(Succeed())
		Expect(task.count).To(Equal(2))

		s.Init(1000)

		Expect(s.Scheduler().IsRegistered(&puppet{name: "p1"})).To(BeFalse())
		Expect(s.NextTick()).To(Equal(sched.Tick(1000)))
	})

	It("should record dispatches into the session database", func() {
		tables := s.DataRecorder().ListTables()

		Expect(tables).To(ContainElement("task_dispatch"))
	})

	It("should not build a monitor when monitoring is off", func() {
		Expect(s.Monitor()).To(BeNil())
	})

	It("should reject a monitor port without monitoring", func() {
		Expect(func() {
			MakeBuilder().WithoutMonitoring().WithMonitorPort(8080).Build()
		}).To(Panic())
	})
})
