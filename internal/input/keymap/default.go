package keymap

import (
	d "github.com/dshills/kestrel/internal/dispatcher"
	"github.com/dshills/kestrel/internal/input/mode"
)

// Defaults returns the built-in keymaps, one per mode that has bindings.
func Defaults() []*Keymap {
	return []*Keymap{
		DefaultInsertKeymap(),
		DefaultViewKeymap(),
		textEntryKeymap(mode.Goto),
		textEntryKeymap(mode.Find),
		textEntryKeymap(mode.Split),
		textEntryKeymap(mode.Command),
		DefaultAddSurroundKeymap(),
		DefaultObjectKeymap(),
		messageKeymap(mode.Error),
		messageKeymap(mode.Warning),
		messageKeymap(mode.Notify),
		messageKeymap(mode.Info),
	}
}

// DefaultInsertKeymap returns the bindings of the base mode.
func DefaultInsertKeymap() *Keymap {
	return NewKeymap(mode.Insert).WithSource("default").
		// Movement
		Add("Left", d.ActionMoveLeft).
		Add("Right", d.ActionMoveRight).
		Add("Up", d.ActionMoveUp).
		Add("Down", d.ActionMoveDown).
		Add("C-Left", d.ActionMoveWordBackward).
		Add("C-Right", d.ActionMoveWordForward).
		Add("A-Left", d.ActionMoveWordBackward).
		Add("A-Right", d.ActionMoveWordForward).
		Add("Home", d.ActionMoveHome).
		Add("A-Home", d.ActionMoveLineStart).
		Add("End", d.ActionMoveLineEnd).
		Add("C-Home", d.ActionMoveDocumentStart).
		Add("C-End", d.ActionMoveDocumentEnd).
		Add("PgUp", d.ActionPageUp).
		Add("PgDn", d.ActionPageDown).

		// Selection
		Add("S-Left", d.ActionExtendLeft).
		Add("S-Right", d.ActionExtendRight).
		Add("S-Up", d.ActionExtendUp).
		Add("S-Down", d.ActionExtendDown).
		Add("C-S-Left", d.ActionExtendWordBackward).
		Add("C-S-Right", d.ActionExtendWordForward).
		Add("A-S-Left", d.ActionExtendWordBackward).
		Add("A-S-Right", d.ActionExtendWordForward).
		Add("S-Home", d.ActionExtendHome).
		Add("S-End", d.ActionExtendLineEnd).
		Add("C-S-Home", d.ActionExtendDocumentStart).
		Add("C-S-End", d.ActionExtendDocumentEnd).
		Add("C-l", d.ActionSelectLine).
		Add("C-a", d.ActionSelectAll).
		Add("Esc", d.ActionClearNonPrimary).
		Add("A-;", d.ActionFlipDirection).
		Add("A-c", d.ActionCollapseToCursor).
		Add("A-a", d.ActionCollapseToAnchor).
		Add("A-Up", d.ActionAddAbove).
		Add("A-Down", d.ActionAddBelow).
		Add("C-n", d.ActionNextPrimary).
		Add("C-p", d.ActionPreviousPrimary).
		Add("A-x", d.ActionRemovePrimary).

		// Editing
		AddText("Enter", d.ActionInsert, "\n").
		AddText("Tab", d.ActionInsert, "\t").
		Add("BS", d.ActionBackspace).
		Add("Del", d.ActionDelete).
		Add("C-x", d.ActionCut).
		Add("C-c", d.ActionCopy).
		Add("C-v", d.ActionPaste).
		Add("C-z", d.ActionUndo).
		Add("C-y", d.ActionRedo).

		// Modes
		AddText("C-g", d.ActionModePush, mode.Goto.String()).
		AddText("C-f", d.ActionModePush, mode.Find.String()).
		AddText("C-r", d.ActionModePush, mode.Split.String()).
		AddText("C-e", d.ActionModePush, mode.Command.String()).
		AddText("C-w", d.ActionModePush, mode.View.String()).
		AddText("C-t", d.ActionModePush, mode.AddSurround.String()).
		AddText("C-o", d.ActionModePush, mode.Object.String()).

		// Files
		Add("C-s", d.ActionSave).
		Add("C-q", d.ActionQuit)
}

// DefaultViewKeymap returns the bindings of View mode.
func DefaultViewKeymap() *Keymap {
	return NewKeymap(mode.View).WithSource("default").
		Add("Up", d.ActionScrollUp).
		Add("Down", d.ActionScrollDown).
		Add("Left", d.ActionScrollLeft).
		Add("Right", d.ActionScrollRight).
		Add("k", d.ActionScrollUp).
		Add("j", d.ActionScrollDown).
		Add("h", d.ActionScrollLeft).
		Add("l", d.ActionScrollRight).
		Add("z", d.ActionCenter).
		Add("Esc", d.ActionModePop).
		Add("q", d.ActionModePop).
		Add("Enter", d.ActionModePop)
}

func textEntryKeymap(kind mode.Kind) *Keymap {
	return NewKeymap(kind).WithSource("default").
		Add("Enter", d.ActionUtilAccept).
		Add("Esc", d.ActionUtilCancel).
		Add("C-c", d.ActionUtilCancel).
		Add("BS", d.ActionUtilBackspace).
		AddText("Tab", d.ActionUtilInsert, "\t")
}

// DefaultAddSurroundKeymap returns the bindings of AddSurround mode. Any
// printable key not bound here names the pair.
func DefaultAddSurroundKeymap() *Keymap {
	return NewKeymap(mode.AddSurround).WithSource("default").
		Add("Esc", d.ActionModePop)
}

// DefaultObjectKeymap returns the bindings of Object mode.
func DefaultObjectKeymap() *Keymap {
	return NewKeymap(mode.Object).WithSource("default").
		Add("p", d.ActionSurroundingPair).
		Add("(", d.ActionSurroundingPair).
		Add("s", d.ActionSurround).
		Add("Esc", d.ActionModePop)
}

func messageKeymap(kind mode.Kind) *Keymap {
	return NewKeymap(kind).WithSource("default").
		Add("Esc", d.ActionModePop).
		Add("Enter", d.ActionModePop)
}
