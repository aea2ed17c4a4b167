package ui

// rowsPerRecord is how many visual table rows one branch record occupies:
// a header line, the commit summary, and a blank separator.
const rowsPerRecord = 3

// rowCursor is a position in the visual row space of the table. It always
// rests on a record's header row, so its value is a multiple of
// rowsPerRecord. All row arithmetic lives here so the rows-per-record
// grouping is a single point of change.
type rowCursor int

// Down moves one record forward, staying put at the last header row.
func (c rowCursor) Down(records int) rowCursor {
	if c+rowsPerRecord > lastHeaderRow(records) {
		return c
	}
	return c + rowsPerRecord
}

// Up moves one record back, staying put at the first row.
func (c rowCursor) Up() rowCursor {
	if c < rowsPerRecord {
		return 0
	}
	return c - rowsPerRecord
}

// RecordIndex maps the cursor to the index of the record it rests on.
func (c rowCursor) RecordIndex() int {
	return int(c) / rowsPerRecord
}

func lastHeaderRow(records int) rowCursor {
	if records == 0 {
		return 0
	}
	return rowCursor((records - 1) * rowsPerRecord)
}
