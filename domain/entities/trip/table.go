package trip

// Table ordered collection of trips of a single city
// + City: city which belongs the data
// + Trips: rows in file order
// + HasGender: true if the source file has a gender column
// + HasBirthYear: true if the source file has a birth year column
type Table struct {
	City         string
	Trips        []*TripData
	HasGender    bool
	HasBirthYear bool
}

func NewTable(city string, hasGender bool, hasBirthYear bool) *Table {
	return &Table{
		City:         city,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

func (t *Table) Append(tripData *TripData) {
	t.Trips = append(t.Trips, tripData)
}

func (t *Table) Len() int {
	return len(t.Trips)
}

func (t *Table) IsEmpty() bool {
	return len(t.Trips) == 0
}

// WithTrips returns a new Table with the same city and column presence but with the given rows
func (t *Table) WithTrips(trips []*TripData) *Table {
	return &Table{
		City:         t.City,
		Trips:        trips,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
}
