package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/browser"
	"github.com/sarchlab/ticksched/sched"
	"github.com/sarchlab/ticksched/session"
	"github.com/spf13/cobra"
)

var (
	demoTicks       int
	demoOwners      int
	demoInterval    int64
	demoMonitorPort int
	demoOutput      string
	demoOpenBrowser bool
)

// A demoOwner stands in for a host-world object that can despawn while its
// task is still registered.
type demoOwner struct {
	name    string
	spawned bool
}

func (o *demoOwner) Name() string { return o.name }

// A demoTask counts its own runs and occasionally despawns its owner to
// exercise the deferred-removal path.
type demoTask struct {
	owner *demoOwner
	runs  int
}

func (t *demoTask) Run() error {
	t.runs++

	if rand.Intn(100) == 0 {
		t.owner.spawned = false
	}

	return nil
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a synthetic host loop against the scheduler.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDemo()
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoTicks, "ticks", 600,
		"number of ticks to advance")
	demoCmd.Flags().IntVar(&demoOwners, "owners", 50,
		"number of owners to register")
	demoCmd.Flags().Int64Var(&demoInterval, "interval", 15,
		"tick interval shared by all demo tasks")
	demoCmd.Flags().IntVar(&demoMonitorPort, "monitor-port", 0,
		"port for the monitoring server, 0 picks a random port")
	demoCmd.Flags().StringVar(&demoOutput, "output", "",
		"output file name for the dispatch database")
	demoCmd.Flags().BoolVar(&demoOpenBrowser, "open", false,
		"open the monitoring page in a browser")

	rootCmd.AddCommand(demoCmd)
}

func monitorPort() int {
	if demoMonitorPort != 0 {
		return demoMonitorPort
	}

	fromEnv := os.Getenv("TICKSCHED_MONITOR_PORT")
	if fromEnv == "" {
		return 0
	}

	port, err := strconv.Atoi(fromEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring TICKSCHED_MONITOR_PORT=%q: %v\n",
			fromEnv, err)
		return 0
	}

	return port
}

func runDemo() error {
	liveness := sched.LivenessFunc(func(o sched.Owner) bool {
		return o.(*demoOwner).spawned
	})

	builder := session.MakeBuilder().
		WithLivenessChecker(liveness).
		WithOutputFileName(demoOutput)
	if port := monitorPort(); port > 0 {
		builder = builder.WithMonitorPort(port)
	}

	s := builder.Build()
	defer s.Terminate()

	s.Init(0)

	tasks := make([]*demoTask, 0, demoOwners)
	for i := 0; i < demoOwners; i++ {
		owner := &demoOwner{
			name:    fmt.Sprintf("owner-%02d", i),
			spawned: true,
		}
		task := &demoTask{owner: owner}
		tasks = append(tasks, task)

		err := s.Scheduler().Register(task, sched.Tick(demoInterval), owner)
		if err != nil {
			return err
		}
	}

	if demoOpenBrowser {
		if port := monitorPort(); port > 0 {
			url := "http://localhost:" + strconv.Itoa(port) + "/api/entries"
			_ = browser.OpenURL(url)
		}
	}

	if err := s.Advance(demoTicks); err != nil {
		return err
	}

	totalRuns := 0
	for _, t := range tasks {
		totalRuns += t.runs
	}

	fmt.Printf("advanced %d ticks, %d owners, %d dispatches, %d survivors\n",
		demoTicks, demoOwners, totalRuns, len(s.Scheduler().Entries()))

	return nil
}
