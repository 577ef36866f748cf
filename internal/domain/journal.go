package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Translator resolves display keys, such as built-in activity type names.
type Translator interface {
	T(key string) string
}

// babyRecords holds everything that belongs to one baby.
type babyRecords struct {
	activities []Activity     // insertion order
	growth     []GrowthRecord // descending date
	teeth      []ToothRecord
}

// Journal is the in-memory aggregate for one caregiver session: the ordered
// babies, the selected baby, the viewed calendar date, the account's custom
// activity types and each baby's records.
//
// Journal is not safe for concurrent use; the session controller serializes
// access to it.
type Journal struct {
	babies      []Baby
	selectedID  uuid.UUID
	cursor      time.Time
	customTypes []CustomActivityType
	records     map[uuid.UUID]*babyRecords
	now         func() time.Time
}

// JournalOption configures a Journal.
type JournalOption func(*Journal)

// WithClock sets the clock used for "today" and the initial cursor.
func WithClock(now func() time.Time) JournalOption {
	return func(j *Journal) {
		j.now = now
	}
}

// NewJournal creates an empty journal whose cursor points at today.
func NewJournal(opts ...JournalOption) *Journal {
	j := &Journal{
		records: make(map[uuid.UUID]*babyRecords),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	j.cursor = startOfDay(j.now())
	return j
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current date key.
func (j *Journal) Today() string {
	return DateKey(j.now())
}

// Babies returns the babies in insertion order.
func (j *Journal) Babies() []Baby {
	out := make([]Baby, len(j.babies))
	copy(out, j.babies)
	return out
}

// AddBaby validates and appends b, seeding its 20 teeth. The first baby
// added becomes the selected one.
func (j *Journal) AddBaby(b Baby) (Baby, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = j.now().UTC()
	}
	if !b.BirthDate.IsZero() {
		b.BirthDate = CivilDate(b.BirthDate)
	}
	if err := b.Validate(); err != nil {
		return Baby{}, err
	}
	if j.babyIndex(b.ID) >= 0 {
		return Baby{}, NewValidationError("id", "already exists", ErrValidation)
	}

	j.babies = append(j.babies, b)
	j.records[b.ID] = &babyRecords{teeth: SeedTeeth()}
	if j.selectedID == uuid.Nil {
		j.selectedID = b.ID
	}
	return b, nil
}

// UpdateBaby replaces the name, birth date and photo of the baby with b.ID.
func (j *Journal) UpdateBaby(b Baby) error {
	i := j.babyIndex(b.ID)
	if i < 0 {
		return fmt.Errorf("baby %s: %w", b.ID, ErrNotFound)
	}

	updated := j.babies[i]
	updated.Name = b.Name
	updated.BirthDate = b.BirthDate
	if !updated.BirthDate.IsZero() {
		updated.BirthDate = CivilDate(updated.BirthDate)
	}
	updated.Photo = b.Photo
	if err := updated.Validate(); err != nil {
		return err
	}

	j.babies[i] = updated
	return nil
}

// CanRemoveBaby reports whether removing a baby would keep at least one.
func (j *Journal) CanRemoveBaby() bool {
	return len(j.babies) >= 2
}

// RemoveBaby deletes the baby and its records. It is a no-op returning false
// when fewer than two babies exist or id is unknown. Removing the selected
// baby selects the first remaining one.
func (j *Journal) RemoveBaby(id uuid.UUID) bool {
	if !j.CanRemoveBaby() {
		return false
	}
	i := j.babyIndex(id)
	if i < 0 {
		return false
	}

	j.babies = append(j.babies[:i:i], j.babies[i+1:]...)
	delete(j.records, id)
	if j.selectedID == id {
		j.selectedID = j.babies[0].ID
	}
	return true
}

// SelectBaby makes id the selected baby.
func (j *Journal) SelectBaby(id uuid.UUID) error {
	if j.babyIndex(id) < 0 {
		return fmt.Errorf("baby %s: %w", id, ErrNotFound)
	}
	j.selectedID = id
	return nil
}

// SelectedBaby returns the selected baby, or false when there are no babies.
func (j *Journal) SelectedBaby() (Baby, bool) {
	i := j.babyIndex(j.selectedID)
	if i < 0 {
		return Baby{}, false
	}
	return j.babies[i], true
}

func (j *Journal) babyIndex(id uuid.UUID) int {
	for i := range j.babies {
		if j.babies[i].ID == id {
			return i
		}
	}
	return -1
}

func (j *Journal) selected() (*babyRecords, error) {
	rec, ok := j.records[j.selectedID]
	if !ok {
		return nil, ErrNoBabySelected
	}
	return rec, nil
}

// Cursor returns the calendar date being viewed.
func (j *Journal) Cursor() time.Time {
	return j.cursor
}

// CursorKey returns the date key of the cursor.
func (j *Journal) CursorKey() string {
	return DateKey(j.cursor)
}

// SetCursor moves the cursor to the calendar date of t.
func (j *Journal) SetCursor(t time.Time) {
	j.cursor = startOfDay(t)
}

// ShiftCursor moves the cursor by days, which may be negative.
func (j *Journal) ShiftCursor(days int) {
	j.cursor = j.cursor.AddDate(0, 0, days)
}

// IsToday reports whether the cursor is on today's date.
func (j *Journal) IsToday() bool {
	return j.CursorKey() == j.Today()
}

// AddActivity validates a and adds it to the selected baby. The activity's
// type must be a built-in or an existing custom type.
func (j *Journal) AddActivity(a Activity) (Activity, error) {
	rec, err := j.selected()
	if err != nil {
		return Activity{}, err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = j.now().UTC()
	}
	a.BabyID = j.selectedID
	if err := j.validateActivity(&a); err != nil {
		return Activity{}, err
	}

	rec.activities = append(rec.activities, a)
	return a, nil
}

// UpdateActivity replaces the activity with the same ID, wherever it lives.
// The owning baby and creation time are kept.
func (j *Journal) UpdateActivity(a Activity) error {
	for babyID, rec := range j.records {
		for i := range rec.activities {
			if rec.activities[i].ID != a.ID {
				continue
			}
			a.BabyID = babyID
			a.CreatedAt = rec.activities[i].CreatedAt
			if err := j.validateActivity(&a); err != nil {
				return err
			}
			rec.activities[i] = a
			return nil
		}
	}
	return fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
}

func (j *Journal) validateActivity(a *Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !IsBuiltin(a.TypeID) && j.customTypeIndex(a.TypeID) < 0 {
		return NewValidationError("type", "is not a known activity type", ErrValidation)
	}
	return nil
}

// RemoveActivity deletes the activity with id and reports whether it existed.
func (j *Journal) RemoveActivity(id uuid.UUID) bool {
	for _, rec := range j.records {
		for i := range rec.activities {
			if rec.activities[i].ID == id {
				rec.activities = append(rec.activities[:i:i], rec.activities[i+1:]...)
				return true
			}
		}
	}
	return false
}

// RemoveActivitiesByType deletes every activity of typeID for every baby and
// returns how many were removed.
func (j *Journal) RemoveActivitiesByType(typeID string) int {
	removed := 0
	for _, rec := range j.records {
		kept := rec.activities[:0]
		for _, a := range rec.activities {
			if a.TypeID == typeID {
				removed++
				continue
			}
			kept = append(kept, a)
		}
		rec.activities = kept
	}
	return removed
}

// Activities returns the selected baby's activities, newest first.
func (j *Journal) Activities() []Activity {
	rec, err := j.selected()
	if err != nil {
		return nil
	}
	out := make([]Activity, len(rec.activities))
	copy(out, rec.activities)
	SortNewestFirst(out)
	return out
}

// ActivitiesOnDate returns the selected baby's activities whose date key is
// exactly dateKey, newest first.
func (j *Journal) ActivitiesOnDate(dateKey string) []Activity {
	var out []Activity
	for _, a := range j.Activities() {
		if a.Date == dateKey {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesOf returns the activities of one baby in insertion order.
func (j *Journal) ActivitiesOf(babyID uuid.UUID) []Activity {
	rec, ok := j.records[babyID]
	if !ok {
		return nil
	}
	out := make([]Activity, len(rec.activities))
	copy(out, rec.activities)
	return out
}

// AddCustomActivityType validates and appends ct. Creation order is kept.
func (j *Journal) AddCustomActivityType(ct CustomActivityType) (CustomActivityType, error) {
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}
	if ct.CreatedAt.IsZero() {
		ct.CreatedAt = j.now().UTC()
	}
	if ct.Color == "" {
		ct.Color = DefaultCustomColor
	}
	if ct.Icon == (Icon{}) {
		ct.Icon = ParseIcon(DefaultCustomIcon)
	}
	if err := ct.Validate(); err != nil {
		return CustomActivityType{}, err
	}
	if j.customTypeIndex(ct.ID) >= 0 {
		return CustomActivityType{}, NewValidationError("id", "already exists", ErrValidation)
	}

	j.customTypes = append(j.customTypes, ct)
	return ct, nil
}

// RemoveCustomActivityType deletes the custom type only. Activities of that
// type are left in place; pair it with RemoveActivitiesByType for a full
// cleanup.
func (j *Journal) RemoveCustomActivityType(id string) bool {
	i := j.customTypeIndex(id)
	if i < 0 {
		return false
	}
	j.customTypes = append(j.customTypes[:i:i], j.customTypes[i+1:]...)
	return true
}

// CustomActivityTypes returns the custom types in creation order.
func (j *Journal) CustomActivityTypes() []CustomActivityType {
	out := make([]CustomActivityType, len(j.customTypes))
	copy(out, j.customTypes)
	return out
}

func (j *Journal) customTypeIndex(id string) int {
	for i := range j.customTypes {
		if j.customTypes[i].ID == id {
			return i
		}
	}
	return -1
}

// AllActivityTypes returns the five built-in types, named through tr and
// colored from palette, followed by the custom types in creation order.
func (j *Journal) AllActivityTypes(tr Translator, palette Palette) []ActivityType {
	colors := palette.Colors()
	types := make([]ActivityType, 0, len(builtinTypes)+len(j.customTypes))
	for _, bt := range builtinTypes {
		types = append(types, ActivityType{
			ID:    bt.id,
			Name:  tr.T(bt.id),
			Icon:  GlyphIcon(bt.glyph),
			Color: colors[bt.colorIndex],
		})
	}
	for i := range j.customTypes {
		types = append(types, j.customTypes[i].ActivityType())
	}
	return types
}

// ActivityType looks up one type from AllActivityTypes by ID.
func (j *Journal) ActivityType(id string, tr Translator, palette Palette) (ActivityType, bool) {
	for _, t := range j.AllActivityTypes(tr, palette) {
		if t.ID == id {
			return t, true
		}
	}
	return ActivityType{}, false
}

// AddGrowthRecord validates g and inserts it for the selected baby, keeping
// the records sorted by descending date.
func (j *Journal) AddGrowthRecord(g GrowthRecord) (GrowthRecord, error) {
	rec, err := j.selected()
	if err != nil {
		return GrowthRecord{}, err
	}

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.BabyID = j.selectedID
	if err := g.Validate(); err != nil {
		return GrowthRecord{}, err
	}

	rec.growth = insertGrowthRecord(rec.growth, g)
	return g, nil
}

// RemoveGrowthRecord deletes the growth record with id.
func (j *Journal) RemoveGrowthRecord(id uuid.UUID) bool {
	for _, rec := range j.records {
		for i := range rec.growth {
			if rec.growth[i].ID == id {
				rec.growth = append(rec.growth[:i:i], rec.growth[i+1:]...)
				return true
			}
		}
	}
	return false
}

// GrowthRecords returns the selected baby's growth records, newest first.
func (j *Journal) GrowthRecords() []GrowthRecord {
	rec, err := j.selected()
	if err != nil {
		return nil
	}
	out := make([]GrowthRecord, len(rec.growth))
	copy(out, rec.growth)
	return out
}

// Teeth returns the selected baby's 20 tooth records.
func (j *Journal) Teeth() []ToothRecord {
	rec, err := j.selected()
	if err != nil {
		return nil
	}
	out := make([]ToothRecord, len(rec.teeth))
	copy(out, rec.teeth)
	return out
}

// SetToothErupted updates one of the selected baby's teeth. erupted=false
// clears the eruption date; erupted=true with an empty date uses today.
func (j *Journal) SetToothErupted(id int, erupted bool, date string) (ToothRecord, error) {
	rec, err := j.selected()
	if err != nil {
		return ToothRecord{}, err
	}
	if date != "" {
		if _, err := ParseDateKey(date); err != nil {
			return ToothRecord{}, NewValidationError("eruptionDate", "must match layout "+DateLayout, ErrValidation)
		}
	}

	for i := range rec.teeth {
		if rec.teeth[i].ID == id {
			rec.teeth[i].setErupted(erupted, date, j.Today())
			return rec.teeth[i], nil
		}
	}
	return ToothRecord{}, fmt.Errorf("tooth %d: %w", id, ErrNotFound)
}
