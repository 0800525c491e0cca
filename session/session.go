// Package session assembles a scheduler with its recording and monitoring
// services and drives it tick by tick.
package session

import (
	"github.com/sarchlab/ticksched/monitoring"
	"github.com/sarchlab/ticksched/recording"
	"github.com/sarchlab/ticksched/sched"
)

// A Session owns a scheduler together with the services that observe it.
type Session struct {
	id string

	scheduler    *sched.Scheduler
	dataRecorder recording.DataRecorder
	runRecorder  *recording.RunRecorder
	monitor      *monitoring.Monitor

	nextTick sched.Tick
}

// ID returns the unique ID of the session.
func (s *Session) ID() string {
	return s.id
}

// Scheduler returns the scheduler driven by the session.
func (s *Session) Scheduler() *sched.Scheduler {
	return s.scheduler
}

// DataRecorder returns the data recorder used in the session.
func (s *Session) DataRecorder() recording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor used in the session, or nil when monitoring is
// disabled.
func (s *Session) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Init initializes the scheduler at the given tick. Calling Init again starts
// a fresh session from that tick; all registrations are discarded.
func (s *Session) Init(now sched.Tick) {
	s.scheduler.Init(now)
	s.nextTick = now
}

// NextTick returns the tick the next Advance will process first.
func (s *Session) NextTick() sched.Tick {
	return s.nextTick
}

// Advance drives n consecutive ticks through the scheduler.
func (s *Session) Advance(n int) error {
	for i := 0; i < n; i++ {
		if err := s.scheduler.Step(s.nextTick); err != nil {
			return err
		}

		s.nextTick++
	}

	return nil
}

// Terminate ends the session and closes the recorder.
func (s *Session) Terminate() {
	s.runRecorder.End()
	s.dataRecorder.Close()
}
