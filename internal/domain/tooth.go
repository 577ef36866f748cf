package domain

// Arch is the dental arch a tooth belongs to.
type Arch string

// Dental arches.
const (
	ArchUpper Arch = "upper"
	ArchLower Arch = "lower"
)

// DentalClass only affects the shape a tooth is drawn with.
type DentalClass string

// Dental classes.
const (
	Incisor DentalClass = "incisor"
	Canine  DentalClass = "canine"
	Molar   DentalClass = "molar"
)

// ToothCount is the number of primary teeth tracked per baby.
const ToothCount = 20

// ToothRecord is the eruption status of one fixed tooth position.
// EruptionDate is set if and only if Erupted is true.
type ToothRecord struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Arch         Arch        `json:"arch"`
	Class        DentalClass `json:"type"`
	Erupted      bool        `json:"erupted"`
	EruptionDate string      `json:"eruptionDate,omitempty"`
}

type toothPosition struct {
	name  string
	class DentalClass
}

// positions per arch, right before left; IDs 1-10 upper and 11-20 lower.
var archPositions = [10]toothPosition{
	{"Central Incisor (Right)", Incisor},
	{"Central Incisor (Left)", Incisor},
	{"Lateral Incisor (Right)", Incisor},
	{"Lateral Incisor (Left)", Incisor},
	{"Canine (Right)", Canine},
	{"Canine (Left)", Canine},
	{"First Molar (Right)", Molar},
	{"First Molar (Left)", Molar},
	{"Second Molar (Right)", Molar},
	{"Second Molar (Left)", Molar},
}

// SeedTeeth returns the 20 tooth records, none erupted.
func SeedTeeth() []ToothRecord {
	teeth := make([]ToothRecord, 0, ToothCount)
	for _, arch := range []Arch{ArchUpper, ArchLower} {
		prefix, offset := "Upper ", 0
		if arch == ArchLower {
			prefix, offset = "Lower ", 10
		}
		for i, pos := range archPositions {
			teeth = append(teeth, ToothRecord{
				ID:    offset + i + 1,
				Name:  prefix + pos.name,
				Arch:  arch,
				Class: pos.class,
			})
		}
	}
	return teeth
}

// setErupted applies an eruption update. A false flag clears the date; a
// true flag without a date uses today.
func (t *ToothRecord) setErupted(erupted bool, date, today string) {
	t.Erupted = erupted
	switch {
	case !erupted:
		t.EruptionDate = ""
	case date != "":
		t.EruptionDate = date
	default:
		t.EruptionDate = today
	}
}
