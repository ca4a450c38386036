package sapling

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key identifies a keyboard key independently of the input backend.
// The zero value is KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash

	keyCount
)

// keyBinding pairs a sapling key with its ebiten equivalent and display name.
type keyBinding struct {
	key    Key
	ebiten ebiten.Key
	name   string
}

// keyBindings is the hand-enumerated set of keys sapling understands.
// Every other ebiten key resolves to KeyUnknown.
var keyBindings = [...]keyBinding{
	{KeyA, ebiten.KeyA, "A"},
	{KeyB, ebiten.KeyB, "B"},
	{KeyC, ebiten.KeyC, "C"},
	{KeyD, ebiten.KeyD, "D"},
	{KeyE, ebiten.KeyE, "E"},
	{KeyF, ebiten.KeyF, "F"},
	{KeyG, ebiten.KeyG, "G"},
	{KeyH, ebiten.KeyH, "H"},
	{KeyI, ebiten.KeyI, "I"},
	{KeyJ, ebiten.KeyJ, "J"},
	{KeyK, ebiten.KeyK, "K"},
	{KeyL, ebiten.KeyL, "L"},
	{KeyM, ebiten.KeyM, "M"},
	{KeyN, ebiten.KeyN, "N"},
	{KeyO, ebiten.KeyO, "O"},
	{KeyP, ebiten.KeyP, "P"},
	{KeyQ, ebiten.KeyQ, "Q"},
	{KeyR, ebiten.KeyR, "R"},
	{KeyS, ebiten.KeyS, "S"},
	{KeyT, ebiten.KeyT, "T"},
	{KeyU, ebiten.KeyU, "U"},
	{KeyV, ebiten.KeyV, "V"},
	{KeyW, ebiten.KeyW, "W"},
	{KeyX, ebiten.KeyX, "X"},
	{KeyY, ebiten.KeyY, "Y"},
	{KeyZ, ebiten.KeyZ, "Z"},

	{Key0, ebiten.KeyDigit0, "0"},
	{Key1, ebiten.KeyDigit1, "1"},
	{Key2, ebiten.KeyDigit2, "2"},
	{Key3, ebiten.KeyDigit3, "3"},
	{Key4, ebiten.KeyDigit4, "4"},
	{Key5, ebiten.KeyDigit5, "5"},
	{Key6, ebiten.KeyDigit6, "6"},
	{Key7, ebiten.KeyDigit7, "7"},
	{Key8, ebiten.KeyDigit8, "8"},
	{Key9, ebiten.KeyDigit9, "9"},

	{KeyUp, ebiten.KeyArrowUp, "Up"},
	{KeyDown, ebiten.KeyArrowDown, "Down"},
	{KeyLeft, ebiten.KeyArrowLeft, "Left"},
	{KeyRight, ebiten.KeyArrowRight, "Right"},

	{KeyF1, ebiten.KeyF1, "F1"},
	{KeyF2, ebiten.KeyF2, "F2"},
	{KeyF3, ebiten.KeyF3, "F3"},
	{KeyF4, ebiten.KeyF4, "F4"},
	{KeyF5, ebiten.KeyF5, "F5"},
	{KeyF6, ebiten.KeyF6, "F6"},
	{KeyF7, ebiten.KeyF7, "F7"},
	{KeyF8, ebiten.KeyF8, "F8"},
	{KeyF9, ebiten.KeyF9, "F9"},
	{KeyF10, ebiten.KeyF10, "F10"},
	{KeyF11, ebiten.KeyF11, "F11"},
	{KeyF12, ebiten.KeyF12, "F12"},

	{KeySpace, ebiten.KeySpace, "Space"},
	{KeyEnter, ebiten.KeyEnter, "Enter"},
	{KeyEscape, ebiten.KeyEscape, "Escape"},
	{KeyTab, ebiten.KeyTab, "Tab"},
	{KeyBackspace, ebiten.KeyBackspace, "Backspace"},
	{KeyDelete, ebiten.KeyDelete, "Delete"},
	{KeyInsert, ebiten.KeyInsert, "Insert"},
	{KeyHome, ebiten.KeyHome, "Home"},
	{KeyEnd, ebiten.KeyEnd, "End"},
	{KeyPageUp, ebiten.KeyPageUp, "PageUp"},
	{KeyPageDown, ebiten.KeyPageDown, "PageDown"},

	{KeyShiftLeft, ebiten.KeyShiftLeft, "ShiftLeft"},
	{KeyShiftRight, ebiten.KeyShiftRight, "ShiftRight"},
	{KeyControlLeft, ebiten.KeyControlLeft, "ControlLeft"},
	{KeyControlRight, ebiten.KeyControlRight, "ControlRight"},
	{KeyAltLeft, ebiten.KeyAltLeft, "AltLeft"},
	{KeyAltRight, ebiten.KeyAltRight, "AltRight"},
	{KeyMetaLeft, ebiten.KeyMetaLeft, "MetaLeft"},
	{KeyMetaRight, ebiten.KeyMetaRight, "MetaRight"},

	{KeyMinus, ebiten.KeyMinus, "Minus"},
	{KeyEqual, ebiten.KeyEqual, "Equal"},
	{KeyComma, ebiten.KeyComma, "Comma"},
	{KeyPeriod, ebiten.KeyPeriod, "Period"},
	{KeySlash, ebiten.KeySlash, "Slash"},
}

// Lookup tables, built once in init and read-only afterwards.
var (
	fromEbiten map[ebiten.Key]Key
	toEbiten   [keyCount]ebiten.Key
	keyNames   [keyCount]string
)

func init() {
	fromEbiten = make(map[ebiten.Key]Key, len(keyBindings))
	keyNames[KeyUnknown] = "Unknown"
	for _, b := range keyBindings {
		fromEbiten[b.ebiten] = b.key
		toEbiten[b.key] = b.ebiten
		keyNames[b.key] = b.name
	}
}

// KeyFromEbiten returns the sapling key for an ebiten key, or KeyUnknown if
// the key is not part of the mapped set.
func KeyFromEbiten(k ebiten.Key) Key {
	if key, ok := fromEbiten[k]; ok {
		return key
	}
	if globalDebug {
		Logger().Debug("sapling: unmapped ebiten key", "key", k.String())
	}
	return KeyUnknown
}

// Ebiten returns the ebiten key for k. The boolean is false for KeyUnknown
// and out-of-range values.
func (k Key) Ebiten() (ebiten.Key, bool) {
	if k == KeyUnknown || k >= keyCount {
		return 0, false
	}
	return toEbiten[k], true
}

// String returns the display name of the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// AppendPressedKeys appends the currently pressed mapped keys to keys and
// returns the extended slice. Unmapped keys are skipped.
// Must be called from the game's Update.
func AppendPressedKeys(keys []Key) []Key {
	var buf [16]ebiten.Key
	return appendMapped(keys, inpututil.AppendPressedKeys(buf[:0]))
}

// appendMapped converts src and appends the mapped keys to dst.
func appendMapped(dst []Key, src []ebiten.Key) []Key {
	for _, ek := range src {
		if k := KeyFromEbiten(ek); k != KeyUnknown {
			dst = append(dst, k)
		}
	}
	return dst
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Modifier returns the modifier bit for k, or 0 if k is not a modifier key.
func (k Key) Modifier() KeyModifiers {
	switch k {
	case KeyShiftLeft, KeyShiftRight:
		return ModShift
	case KeyControlLeft, KeyControlRight:
		return ModCtrl
	case KeyAltLeft, KeyAltRight:
		return ModAlt
	case KeyMetaLeft, KeyMetaRight:
		return ModMeta
	default:
		return 0
	}
}

// ModifiersOf folds the modifier keys in keys into a bitmask.
func ModifiersOf(keys []Key) KeyModifiers {
	var mods KeyModifiers
	for _, k := range keys {
		mods |= k.Modifier()
	}
	return mods
}

// ReadModifiers reads the current keyboard modifier state from ebiten.
// Must be called from the game's Update.
func ReadModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
