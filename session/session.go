package session

import (
	"log"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/chordpad/audio"
	"github.com/jsphweid/chordpad/bass"
	"github.com/jsphweid/chordpad/chord"
	"github.com/jsphweid/chordpad/constants"
	"github.com/jsphweid/chordpad/cursor"
	"github.com/jsphweid/chordpad/model"
	"github.com/jsphweid/chordpad/note"
	"github.com/jsphweid/chordpad/scale"
	"github.com/jsphweid/chordpad/util"
	"github.com/pkg/errors"
)

var (
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrEmptySlot     = errors.New("slot is empty")
	ErrNothingToSave = errors.New("no note has been pressed")
)

type Options struct {
	Root            note.PitchClass
	Mode            scale.Mode
	Octave          int
	Inversion       int
	Bass            bass.Offset
	UseFlats        bool
	Instrument      audio.Instrument
	HoldDelay       time.Duration
	HoldInterval    time.Duration
	LoadingDuration time.Duration
	// Logger reports failures in background steps such as auto repeat.
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Root:            note.ASharp,
		Mode:            scale.Free,
		Bass:            bass.Root,
		Instrument:      audio.Piano,
		HoldDelay:       constants.HoldDelay,
		HoldInterval:    constants.HoldInterval,
		LoadingDuration: constants.LoadingDuration,
	}
}

// Slot is a saved chord voicing.
type Slot struct {
	Root       note.PitchClass
	Type       chord.Type
	Octave     int
	Inversion  int
	Bass       bass.Offset
	Instrument audio.Instrument
}

// Session owns the selection state of one player and turns key gestures into
// chords for the sink and the display.
type Session struct {
	mu      sync.Mutex
	id      uuid.UUID
	sink    audio.Sink
	display Display
	logger  *log.Logger

	root       note.PitchClass
	mode       scale.Mode
	octave     int
	inversion  int
	bass       bass.Offset
	useFlats   bool
	instrument audio.Instrument
	loading    bool

	cursor      *cursor.Cursor
	held        map[note.PitchClass]bool
	lastPressed note.PitchClass
	hasLast     bool
	slots       [constants.NumSlots]*Slot

	hold         *repeater
	clearLoading func(func())
}

func New(sink audio.Sink, display Display, opts Options) *Session {
	if sink == nil {
		sink = audio.LogSink{}
	}
	if display == nil {
		display = NopDisplay{}
	}
	if !opts.Bass.Valid() {
		opts.Bass = bass.Root
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.HoldDelay <= 0 {
		opts.HoldDelay = constants.HoldDelay
	}
	if opts.HoldInterval <= 0 {
		opts.HoldInterval = constants.HoldInterval
	}
	if opts.LoadingDuration <= 0 {
		opts.LoadingDuration = constants.LoadingDuration
	}
	return &Session{
		id:           uuid.New(),
		sink:         sink,
		display:      display,
		logger:       opts.Logger,
		root:         opts.Root,
		mode:         opts.Mode,
		octave:       util.Clamp(opts.Octave, constants.MinOctave, constants.MaxOctave),
		inversion:    util.Clamp(opts.Inversion, constants.MinInversion, constants.MaxInversion),
		bass:         opts.Bass,
		useFlats:     opts.UseFlats,
		instrument:   opts.Instrument,
		cursor:       cursor.New(),
		held:         make(map[note.PitchClass]bool),
		hold:         newRepeater(opts.HoldDelay, opts.HoldInterval),
		clearLoading: debounce.New(opts.LoadingDuration),
	}
}

func (s *Session) ID() string {
	return s.id.String()
}

// chordFor builds what key n plays right now, false when n is outside the
// active scale.
func (s *Session) chordFor(n note.PitchClass) (chord.Chord, bool, error) {
	degree, ok := scale.Degree(s.root, s.mode, n)
	if !ok {
		return chord.Chord{}, false, nil
	}
	t := s.cursor.Current(n, s.mode, degree)
	c, err := chord.Build(n, t, s.octave, s.inversion)
	if err != nil {
		return chord.Chord{}, false, errors.Wrapf(err, "could not build chord for %v", n)
	}
	c.Name = chord.Name(n, t, s.useFlats)
	return c, true, nil
}

// withBass resolves the bass note for c and adds it to the label when it
// differs from the root.
func (s *Session) withBass(c *chord.Chord, offset bass.Offset) (uint8, bool) {
	pitch, ok := bass.Resolve(c.Root, c.Notes, offset)
	if ok && note.FromPitch(pitch) != c.Root {
		c.Name += "/" + note.FromPitch(pitch).Name(s.useFlats)
	}
	return pitch, ok
}

func (s *Session) play(c chord.Chord, bassPitch uint8, hasBass bool, instrument audio.Instrument) {
	s.sink.PlayChord(c.Notes, instrument)
	if hasBass {
		s.sink.PlayBassNote(bassPitch)
	}
}

// Press plays key n. Keys outside the active scale are ignored and return a
// nil chord.
func (s *Session) Press(n note.PitchClass) (*chord.Chord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok, err := s.chordFor(n)
	if err != nil || !ok {
		return nil, err
	}

	s.held[n] = true
	s.lastPressed = n
	s.hasLast = true

	pitch, hasBass := s.withBass(&c, s.bass)
	s.play(c, pitch, hasBass, s.instrument)
	s.display.OnNoteSelect(n)
	s.display.OnChordChange(&c)
	return &c, nil
}

// Release lets go of key n. Sound stops once no key is held.
func (s *Session) Release(n note.PitchClass) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held[n] {
		return
	}
	delete(s.held, n)
	if len(s.held) == 0 {
		s.sink.StopChord()
		s.display.OnChordChange(nil)
	}
}

// Advance cycles the chord type of the last pressed key. If that key is
// still held the new chord sounds right away.
func (s *Session) Advance(dir cursor.Direction) (*chord.Chord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLast {
		return nil, nil
	}
	degree, ok := scale.Degree(s.root, s.mode, s.lastPressed)
	if !ok {
		return nil, nil
	}
	s.cursor.Advance(s.lastPressed, dir, s.mode, degree)

	c, ok, err := s.chordFor(s.lastPressed)
	if err != nil || !ok {
		return nil, err
	}
	pitch, hasBass := s.withBass(&c, s.bass)
	if s.held[s.lastPressed] {
		s.play(c, pitch, hasBass, s.instrument)
	}
	s.display.OnChordChange(&c)
	return &c, nil
}

// Hold advances once, then keeps advancing while the gesture lasts.
func (s *Session) Hold(dir cursor.Direction) (*chord.Chord, error) {
	c, err := s.Advance(dir)
	if err != nil {
		return nil, err
	}
	s.hold.Start(func() {
		s.repeatStep(s.Advance(dir))
	})
	return c, nil
}

func (s *Session) repeatStep(_ *chord.Chord, err error) {
	if err != nil {
		s.logger.Printf("ERROR: auto repeat: %s\n", err)
	}
}

func (s *Session) Unhold() {
	s.hold.Stop()
}

// refresh re-announces the last pressed key's chord after a setting changed.
func (s *Session) refresh() {
	if !s.hasLast {
		return
	}
	c, ok, err := s.chordFor(s.lastPressed)
	if err != nil || !ok {
		return
	}
	s.withBass(&c, s.bass)
	s.display.OnChordChange(&c)
}

// dropStaleSelection forgets the last pressed key when it left the scale.
func (s *Session) dropStaleSelection() {
	if s.hasLast && !scale.Contains(s.root, s.mode, s.lastPressed) {
		s.hasLast = false
	}
}

// SetRoot changes the key. Outside free mode every key lands on a new
// degree, so the chord selections start over.
func (s *Session) SetRoot(root note.PitchClass) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if root == s.root {
		return
	}
	s.root = root
	if s.mode != scale.Free {
		s.cursor.Reset()
	}
	s.dropStaleSelection()
	s.display.OnScaleNotesChange(scale.Notes(s.root, s.mode))
	s.refresh()
}

func (s *Session) SetMode(mode scale.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == s.mode || !mode.Valid() {
		return
	}
	from := scale.Notes(s.root, s.mode)
	to := scale.Notes(s.root, mode)
	s.cursor.Transition(s.mode, mode, from, to)
	s.mode = mode
	s.dropStaleSelection()
	s.display.OnScaleNotesChange(to)
	s.refresh()
}

// SetOctave clamps to [-2, 2] and returns the value kept.
func (s *Session) SetOctave(octave int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.octave = util.Clamp(octave, constants.MinOctave, constants.MaxOctave)
	s.refresh()
	return s.octave
}

// SetInversion clamps to [-3, 3] and returns the value kept.
func (s *Session) SetInversion(inversion int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inversion = util.Clamp(inversion, constants.MinInversion, constants.MaxInversion)
	s.refresh()
	return s.inversion
}

func (s *Session) SetBass(o bass.Offset) error {
	if !o.Valid() {
		return errors.Wrapf(bass.ErrInvalidOffset, "%d", o)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bass = o
	s.refresh()
	return nil
}

func (s *Session) SetFlats(useFlats bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.useFlats = useFlats
	s.display.OnScaleNotesChange(scale.Notes(s.root, s.mode))
	s.refresh()
}

// SetInstrument switches sound. The session reports Loading until the
// switch settles.
func (s *Session) SetInstrument(i audio.Instrument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.instrument = i
	s.loading = true
	s.clearLoading(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
	})
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) ScaleNotes() []note.PitchClass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scale.Notes(s.root, s.mode)
}

// KeyLabel is what key n shows, false when the key is not playable.
func (s *Session) KeyLabel(n note.PitchClass) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok, err := s.chordFor(n)
	if err != nil || !ok {
		return "", false
	}
	if s.hasLast && n == s.lastPressed {
		s.withBass(&c, s.bass)
	}
	return c.Name, true
}

// LastPressed returns the key the +/- controls act on.
func (s *Session) LastPressed() (note.PitchClass, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPressed, s.hasLast
}

func checkSlot(i int) error {
	if i < 0 || i >= constants.NumSlots {
		return errors.Wrapf(ErrInvalidSlot, "%d", i)
	}
	return nil
}

// SaveSlot stores the last pressed key's current voicing in slot i.
func (s *Session) SaveSlot(i int) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLast {
		return ErrNothingToSave
	}
	c, ok, err := s.chordFor(s.lastPressed)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingToSave
	}
	s.slots[i] = &Slot{
		Root:       c.Root,
		Type:       c.Type,
		Octave:     s.octave,
		Inversion:  s.inversion,
		Bass:       s.bass,
		Instrument: s.instrument,
	}
	return nil
}

// RecallSlot plays slot i as saved. The selection state is left alone.
func (s *Session) RecallSlot(i int) (*chord.Chord, error) {
	if err := checkSlot(i); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.slots[i]
	if slot == nil {
		return nil, errors.Wrapf(ErrEmptySlot, "%d", i)
	}
	c, err := s.slotChord(slot)
	if err != nil {
		return nil, err
	}
	pitch, hasBass := s.withBass(&c, slot.Bass)
	s.play(c, pitch, hasBass, slot.Instrument)
	s.display.OnChordChange(&c)
	return &c, nil
}

func (s *Session) slotChord(slot *Slot) (chord.Chord, error) {
	c, err := chord.Build(slot.Root, slot.Type, slot.Octave, slot.Inversion)
	if err != nil {
		return chord.Chord{}, err
	}
	c.Name = chord.Name(slot.Root, slot.Type, s.useFlats)
	return c, nil
}

func (s *Session) ClearSlot(i int) error {
	if err := checkSlot(i); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[i] = nil
	return nil
}

func (s *Session) Slot(i int) (Slot, bool) {
	if checkSlot(i) != nil {
		return Slot{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slots[i] == nil {
		return Slot{}, false
	}
	return *s.slots[i], true
}

// Snapshot returns a printable copy of the selection state.
func (s *Session) Snapshot() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := model.State{
		SessionId:  s.id.String(),
		Root:       s.root.Name(s.useFlats),
		Mode:       s.mode.String(),
		Octave:     s.octave,
		Inversion:  s.inversion,
		Bass:       s.bass.String(),
		UseFlats:   s.useFlats,
		Instrument: s.instrument.String(),
		Loading:    s.loading,
	}
	if s.hasLast {
		state.LastPressed = s.lastPressed.Name(s.useFlats)
	}
	for _, n := range scale.Notes(s.root, s.mode) {
		state.ScaleNotes = append(state.ScaleNotes, n.Name(s.useFlats))
	}
	for i, slot := range s.slots {
		if slot == nil {
			continue
		}
		c, err := s.slotChord(slot)
		if err != nil {
			continue
		}
		s.withBass(&c, slot.Bass)
		state.Slots = append(state.Slots, model.Slot{Index: i, Label: c.Name, Notes: c.Notes})
	}
	return state
}
