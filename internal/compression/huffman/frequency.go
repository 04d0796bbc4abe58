package huffman

// FrequencyEntry is the number of times Symbol occurs in an input buffer.
type FrequencyEntry struct {
	Symbol byte
	Count  uint64
}

// FrequencyTable holds one entry per distinct symbol, in ascending symbol order.
type FrequencyTable struct {
	entries []FrequencyEntry
}

// CountFrequencies scans content once and returns its frequency table.
func CountFrequencies(content []byte) *FrequencyTable {
	var counts [256]uint64
	for _, b := range content {
		counts[b]++
	}
	table := &FrequencyTable{}
	for symbol, count := range counts {
		if count > 0 {
			table.entries = append(table.entries, FrequencyEntry{Symbol: byte(symbol), Count: count})
		}
	}
	return table
}

func (ft *FrequencyTable) Len() int {
	return len(ft.entries)
}

// Entries returns a copy of the table's entries.
func (ft *FrequencyTable) Entries() []FrequencyEntry {
	return append([]FrequencyEntry{}, ft.entries...)
}

// Count returns the number of occurrences of symbol, zero if absent.
func (ft *FrequencyTable) Count(symbol byte) uint64 {
	for _, e := range ft.entries {
		if e.Symbol == symbol {
			return e.Count
		}
	}
	return 0
}

// Total returns the sum of all counts, i.e. the length of the scanned input.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, e := range ft.entries {
		total += e.Count
	}
	return total
}
