package schedule

// Schedule is a time-indexed sequence of Configs, logically indexed
// 1..T, stored as a zero-indexed slice. It is grown only by Append; the
// streaming harness (package streaming) is the only caller expected to
// grow one in place: a Schedule
// is exclusively owned by the harness while a streaming call is in
// progress.
type Schedule []Config

// NewSchedule returns an empty Schedule with capacity hint cap.
func NewSchedule(capHint int) Schedule {
	return make(Schedule, 0, capHint)
}

// Append returns a new Schedule with c appended to the tail. Schedule
// values are treated as immutable snapshots by callers that hold a
// shared read reference; append-in-place is left to the harness, which
// owns the backing slice exclusively.
func (s Schedule) Append(c Config) Schedule {
	return append(s, c)
}

// Now returns the last Config in s, or a zero Config of dimension d and
// kind k if s is empty.
func (s Schedule) Now(d int, k Kind) Config {
	if len(s) == 0 {
		return NewConfig(d, k)
	}
	return s[len(s)-1]
}

// NowWithDefault returns the last Config in s, or def if s is empty.
func (s Schedule) NowWithDefault(def Config) Config {
	if len(s) == 0 {
		return def
	}
	return s[len(s)-1]
}

// ToIntegral returns the componentwise-ceiling Integral conversion of
// every Config in s.
func (s Schedule) ToIntegral() Schedule {
	out := make(Schedule, len(s))
	for i, c := range s {
		out[i] = c.ToIntegral()
	}
	return out
}

// ToFractional returns the componentwise Fractional conversion of every
// Config in s.
func (s Schedule) ToFractional() Schedule {
	out := make(Schedule, len(s))
	for i, c := range s {
		out[i] = c.ToFractional()
	}
	return out
}

// ApplyPrecisionTo applies round (typically numerics.ApplyPrecision) to
// every Fractional entry of s, componentwise. Integral entries are
// unaffected since they carry no fractional error to round away.
func (s Schedule) ApplyPrecisionTo(round func(float64) float64) Schedule {
	out := make(Schedule, len(s))
	for i, c := range s {
		nc := make(Config, len(c))
		for j, v := range c {
			if v.Kind() == Fractional {
				nc[j] = NewFractional(round(v.ToReal()))
			} else {
				nc[j] = v
			}
		}
		out[i] = nc
	}
	return out
}

// BuildRaw fills a Schedule of length tEnd with tEnd copies of config.
func BuildRaw(tEnd int, config Config) Schedule {
	s := make(Schedule, tEnd)
	for i := range s {
		s[i] = config.Clone()
	}
	return s
}

// FromRaw decodes a flat vector of length d*tEnd (row-major: time-major,
// dimension-minor) into a Fractional Schedule of tEnd Configs of
// dimension d. It is the inverse of flattening a Schedule for
// package convexsolver's box-constrained solve.
func FromRaw(d, tEnd int, flat []float64) (Schedule, error) {
	if len(flat) != d*tEnd {
		return nil, ErrDimensionMismatch
	}
	s := make(Schedule, tEnd)
	for t := 0; t < tEnd; t++ {
		c := make(Config, d)
		for k := 0; k < d; k++ {
			c[k] = NewFractional(flat[t*d+k])
		}
		s[t] = c
	}
	return s, nil
}

// Flatten is the inverse of FromRaw: it lays out a Schedule of tEnd
// Configs of dimension d as a flat, time-major vector of reals.
func Flatten(s Schedule) []float64 {
	if len(s) == 0 {
		return nil
	}
	d := len(s[0])
	flat := make([]float64, 0, d*len(s))
	for _, c := range s {
		for _, v := range c {
			flat = append(flat, v.ToReal())
		}
	}
	return flat
}
