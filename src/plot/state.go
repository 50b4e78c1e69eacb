package plot

// State is the content accumulated on a figure. Backends embed it and only add rendering.
type State struct {
	Series []Series
	Legend []string
	XLabel string
	YLabel string
	Title  string
	Scale  Scale
}

func (s *State) Plot(series Series)        { s.Series = append(s.Series, series) }
func (s *State) SetLabels(x, y string)     { s.XLabel, s.YLabel = x, y }
func (s *State) SetScale(sc Scale)         { s.Scale = sc }
func (s *State) SetLegend(labels []string) { s.Legend = append([]string(nil), labels...) }
func (s *State) SetTitle(title string)     { s.Title = title }

// LegendEntries returns the legend as drawn: one entry per series, in plotting order.
func (s *State) LegendEntries() []string {
	out := make([]string, len(s.Series))
	for i := range s.Series {
		out[i] = LegendLabel(s.Legend, i)
	}
	return out
}

// Drawable returns the points of series i that the current scale can show. A log axis
// has no place for non-positive counts, so they are left out.
func (s *State) Drawable(i int) (xs, ys []float64) {
	ser := s.Series[i]
	if s.Scale != Log {
		return ser.X, ser.Y
	}
	xs = make([]float64, 0, len(ser.Y))
	ys = make([]float64, 0, len(ser.Y))
	for j, v := range ser.Y {
		if v > 0 {
			xs = append(xs, ser.X[j])
			ys = append(ys, v)
		}
	}
	return xs, ys
}

// AllY returns the raw Y values of every series.
func (s *State) AllY() [][]float64 {
	out := make([][]float64, len(s.Series))
	for i, ser := range s.Series {
		out[i] = ser.Y
	}
	return out
}
