package allocation

// Performance holds the starting value and the end value of a simulation.
type Performance struct {
	Start, End Money
	Return     Percent
}

func NewPerformanceWithReturn(start, end Money, ret Percent) Performance {
	return Performance{
		Start:  start,
		End:    end,
		Return: ret,
	}
}

// Change returns the gain or loss.
func (p Performance) Change() Money {
	return p.End.Sub(p.Start)
}
