package glib

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// FrameStats is one row of per-frame occupancy.
type FrameStats struct {
	Frame          int `csv:"frame"`
	Active         int `csv:"active"`
	Available      int `csv:"available"`
	Outstanding    int `csv:"outstanding"`
	Created        int `csv:"created"`
	Replenishments int `csv:"replenishments"`
	DrawCalls      int `csv:"draw_calls"`
}

// StatsSummary condenses a recording.
type StatsSummary struct {
	Frames         int
	MeanActive     float64
	StdDevActive   float64
	PeakActive     int
	PeakCreated    int
	Replenishments int
}

// StatsRecorder samples a pool and its engines once per frame.
type StatsRecorder struct {
	pool   *Pool
	frames []FrameStats
}

// NewStatsRecorder returns a recorder sampling pool.
func NewStatsRecorder(pool *Pool) *StatsRecorder {
	return &StatsRecorder{pool: pool}
}

// Record appends one row: the pool snapshot, the total active count across
// engines and the draw calls issued this frame.
func (r *StatsRecorder) Record(drawCalls int, engines ...*Engine) FrameStats {
	ps := r.pool.Stats()
	fs := FrameStats{
		Frame:          len(r.frames),
		Available:      ps.Available,
		Outstanding:    ps.Outstanding,
		Created:        ps.Created,
		Replenishments: ps.Replenishments,
		DrawCalls:      drawCalls,
	}
	for _, e := range engines {
		fs.Active += e.Len()
	}
	r.frames = append(r.frames, fs)
	return fs
}

// Frames returns the recorded rows.
func (r *StatsRecorder) Frames() []FrameStats {
	return r.frames
}

// WriteCSV writes the recorded rows with a header line.
func (r *StatsRecorder) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(r.frames, w); err != nil {
		return fmt.Errorf("glib: writing stats: %w", err)
	}
	return nil
}

// Summary computes the mean and standard deviation of the active count and
// the peaks seen over the recording.
func (r *StatsRecorder) Summary() StatsSummary {
	s := StatsSummary{Frames: len(r.frames)}
	if len(r.frames) == 0 {
		return s
	}
	active := make([]float64, len(r.frames))
	for i, f := range r.frames {
		active[i] = float64(f.Active)
		s.PeakActive = max(s.PeakActive, f.Active)
		s.PeakCreated = max(s.PeakCreated, f.Created)
	}
	s.Replenishments = r.frames[len(r.frames)-1].Replenishments
	if len(active) > 1 {
		s.MeanActive, s.StdDevActive = stat.MeanStdDev(active, nil)
	} else {
		s.MeanActive = active[0]
	}
	return s
}
