package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	// Configuration
	RunID     uuid.UUID
	Duration  time.Duration
	Layout    string
	Frames    int
	FrameStep time.Duration
	Think     time.Duration
	Gap       float64

	// Results
	Matches        int
	TotalFrames    int64
	TotalTime      time.Duration
	FrameTime      Stats
	LeftWins       int
	RightWins      int
	Draws          int
	LeftHits       int
	RightHits      int
	Shots          int64
	PairHits       int64
	WallHits       int64
	TimersFired    int64
	ScriptFailures int64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds one match into the totals.
func (r *Report) Add(m matchResult) {
	r.Matches++
	r.TotalFrames += m.Frames
	r.FrameTime.Samples = append(r.FrameTime.Samples, m.FrameTimes...)
	r.LeftHits += m.LeftHits
	r.RightHits += m.RightHits
	r.Shots += m.Shots
	r.PairHits += m.Physics.PairHits
	r.WallHits += m.Physics.WallHits
	r.TimersFired += m.TimersFired
	r.ScriptFailures += m.ScriptFailures

	switch {
	case m.LeftHits > m.RightHits:
		r.LeftWins++
	case m.RightHits > m.LeftHits:
		r.RightWins++
	default:
		r.Draws++
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tank Duel Stress Report

## Run Configuration
- **Run ID:** {{.RunID}}
- **Run Duration:** {{.Duration}}
- **Layout:** {{.Layout}} (spawn gap {{.Gap}})
- **Frames per Match:** {{.Frames}} x {{.FrameStep}}
- **Script Think Period:** {{.Think}}

## Match Results
- **Matches:** {{.Matches}}
- **Wins:** left {{.LeftWins}}, right {{.RightWins}}, draws {{.Draws}}
- **Hits:** left {{.LeftHits}}, right {{.RightHits}}
- **Shots Fired:** {{.Shots}}
- **Script Failures:** {{.ScriptFailures}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Timers Fired:** {{.TimersFired}}
- **Collisions:** {{.PairHits}} pair, {{.WallHits}} wall
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
