package robinmap

// Stats is a point-in-time snapshot of table health, computed by a full
// slot scan.
type Stats struct {
	Size        int
	Capacity    int
	GrowAt      int
	MaxDistance int
	AvgDistance float64
}

func (m *Map[K, V]) Stats() Stats {
	st := Stats{
		Size:     m.size,
		Capacity: len(m.slots),
		GrowAt:   m.growAt,
	}

	total := 0
	for i := range m.slots {
		if !m.slots[i].filled {
			continue
		}

		total += m.slots[i].dist
		if m.slots[i].dist > st.MaxDistance {
			st.MaxDistance = m.slots[i].dist
		}
	}

	if m.size > 0 {
		st.AvgDistance = float64(total) / float64(m.size)
	}

	return st
}
