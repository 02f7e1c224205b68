package returns

// historical annual total returns, in percent.
// Equities is a broad US large cap index, bonds a US aggregate bond index
// and bitcoin the BTC/USD price change over the calendar year.
var historical = []struct {
	year                     int
	equities, bonds, bitcoin float64
}{
	{2014, 13.7, 6.0, -58.0},
	{2015, 1.4, 0.5, 35.0},
	{2016, 12.0, 2.6, 125.0},
	{2017, 21.8, 3.5, 1318.0},
	{2018, -4.4, 0.0, -73.0},
	{2019, 31.5, 8.7, 95.0},
	{2020, 18.4, 7.5, 303.0},
	{2021, 28.7, -1.5, 60.0},
	{2022, -18.1, -13.0, -64.0},
	{2023, 26.3, 5.5, 156.0},
	{2024, 25.0, 1.3, 121.0},
}

// Historical returns a new table filled with the built-in historical returns.
func Historical() *Table {
	t := NewTable()
	for _, h := range historical {
		t.Set(Equities, h.year, h.equities)
		t.Set(Bonds, h.year, h.bonds)
		t.Set(Bitcoin, h.year, h.bitcoin)
	}
	return t
}
