package recording

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// runInfo is one property of the recorded run.
type runInfo struct {
	Property string
	Value    string
}

// A RunRecorder stores information about one execution of the host program,
// such as the command line and the start and end times.
type RunRecorder struct {
	tableName string
	recorder  DataRecorder
	entries   []runInfo
}

// NewRunRecorder creates a RunRecorder that writes into the given recorder.
func NewRunRecorder(recorder DataRecorder) *RunRecorder {
	r := &RunRecorder{
		recorder: recorder,
	}

	start := time.Now().Format("2006_01_02_15_04_05")
	r.tableName = "run_log_" + start
	r.recorder.CreateTable(r.tableName, runInfo{})

	return r
}

// Start captures the command line and the start time of the run.
func (r *RunRecorder) Start() {
	startTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	r.entries = append(r.entries, runInfo{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	r.entries = append(r.entries, runInfo{"Command", cmd})

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	cwd := filepath.Dir(ex)
	r.entries = append(r.entries, runInfo{"Working Directory", cwd})
}

// End writes the captured properties along with the end time of the run.
func (r *RunRecorder) End() {
	for _, entry := range r.entries {
		r.recorder.InsertData(r.tableName, entry)
	}

	endTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	r.recorder.InsertData(r.tableName, runInfo{"End Time", endTime})

	r.entries = nil

	r.recorder.Flush()
}
