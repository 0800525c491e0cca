package session

import (
	"log"

	"github.com/rs/xid"
	"github.com/sarchlab/ticksched/monitoring"
	"github.com/sarchlab/ticksched/recording"
	"github.com/sarchlab/ticksched/sched"
)

// Builder can be used to build a session.
type Builder struct {
	liveness       sched.LivenessChecker
	logger         *log.Logger
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithLivenessChecker sets the liveness checker queried at dispatch time.
// Without one, every owner is treated as spawned.
func (b Builder) WithLivenessChecker(c sched.LivenessChecker) Builder {
	b.liveness = c
	return b
}

// WithLogger sets the logger for scheduler warnings and task failures.
func (b Builder) WithLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithoutMonitoring sets the session to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		id: xid.New().String(),
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "ticksched_" + s.id
	}
	s.dataRecorder = recording.NewDataRecorder(outputPath)

	liveness := b.liveness
	if liveness == nil {
		liveness = sched.LivenessFunc(func(_ sched.Owner) bool { return true })
	}

	s.scheduler = sched.NewScheduler(liveness, b.logger)
	s.scheduler.AcceptHook(
		recording.NewDispatchLogger(s.scheduler, s.dataRecorder))

	s.runRecorder = recording.NewRunRecorder(s.dataRecorder)
	s.runRecorder.Start()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterScheduler(s.scheduler)
		s.monitor.StartServer()
	}

	return s
}
