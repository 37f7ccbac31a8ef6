package domain

// Manufacturer carries its current name plus a fixed-depth ring of the two
// most recent previous names. A third rename drops the oldest prior name.
type Manufacturer struct {
	ID               string     `json:"id" validate:"required,uuid"`
	ManufacturerName string     `json:"manufacturerName" validate:"required"`
	PrevNames        [2]*string `json:"prevNames" validate:"-"`
}

func (m Manufacturer) Validate() error {
	return runValidation(m)
}

// RecordRename shifts the name ring (current -> prev, prev -> prev-prev) and
// applies the new name. A rename to the same name is a no-op.
func (m *Manufacturer) RecordRename(newName string) {
	if newName == m.ManufacturerName {
		return
	}
	old := m.ManufacturerName
	m.PrevNames[1] = m.PrevNames[0]
	m.PrevNames[0] = &old
	m.ManufacturerName = newName
}

// KnownAs reports whether the manufacturer currently has, or previously had,
// the given name.
func (m Manufacturer) KnownAs(name string) bool {
	if m.ManufacturerName == name {
		return true
	}
	for _, prev := range m.PrevNames {
		if prev != nil && *prev == name {
			return true
		}
	}
	return false
}
