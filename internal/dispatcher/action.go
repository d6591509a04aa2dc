package dispatcher

import "fmt"

// Action is a request to run one editor operation.
type Action struct {
	// Name is the dotted action name, e.g. "cursor.moveDown".
	Name string

	// Count is the repeat count. Zero means the action's default.
	Count int

	// Text is the action's text argument: inserted text, a mode name or a
	// surround pair character.
	Text string
}

// String returns the action name with its arguments.
func (a Action) String() string {
	switch {
	case a.Text != "" && a.Count > 0:
		return fmt.Sprintf("%s(%d, %q)", a.Name, a.Count, a.Text)
	case a.Text != "":
		return fmt.Sprintf("%s(%q)", a.Name, a.Text)
	case a.Count > 0:
		return fmt.Sprintf("%s(%d)", a.Name, a.Count)
	}
	return a.Name
}

// count returns the repeat count, at least 1.
func (a Action) count() int {
	return max(a.Count, 1)
}

// Action names, grouped by namespace.
const (
	ActionMoveLeft          = "cursor.moveLeft"
	ActionMoveRight         = "cursor.moveRight"
	ActionMoveUp            = "cursor.moveUp"
	ActionMoveDown          = "cursor.moveDown"
	ActionMoveWordForward   = "cursor.moveWordForward"
	ActionMoveWordBackward  = "cursor.moveWordBackward"
	ActionMoveLineStart     = "cursor.moveLineStart"
	ActionMoveLineTextStart = "cursor.moveLineTextStart"
	ActionMoveLineEnd       = "cursor.moveLineEnd"
	ActionMoveHome          = "cursor.moveHome"
	ActionMoveDocumentStart = "cursor.moveDocumentStart"
	ActionMoveDocumentEnd   = "cursor.moveDocumentEnd"
	ActionPageUp            = "cursor.pageUp"
	ActionPageDown          = "cursor.pageDown"
	ActionGotoLine          = "cursor.gotoLine"
)

const (
	ActionExtendLeft          = "selection.extendLeft"
	ActionExtendRight         = "selection.extendRight"
	ActionExtendUp            = "selection.extendUp"
	ActionExtendDown          = "selection.extendDown"
	ActionExtendWordForward   = "selection.extendWordForward"
	ActionExtendWordBackward  = "selection.extendWordBackward"
	ActionExtendLineStart     = "selection.extendLineStart"
	ActionExtendLineEnd       = "selection.extendLineEnd"
	ActionExtendHome          = "selection.extendHome"
	ActionExtendDocumentStart = "selection.extendDocumentStart"
	ActionExtendDocumentEnd   = "selection.extendDocumentEnd"
	ActionSelectLine          = "selection.selectLine"
	ActionSelectAll           = "selection.selectAll"
	ActionCollapseToCursor    = "selection.collapseToCursor"
	ActionCollapseToAnchor    = "selection.collapseToAnchor"
	ActionFlipDirection       = "selection.flipDirection"
	ActionAddAbove            = "selection.addAbove"
	ActionAddBelow            = "selection.addBelow"
	ActionNextPrimary         = "selection.nextPrimary"
	ActionPreviousPrimary     = "selection.previousPrimary"
	ActionClearNonPrimary     = "selection.clearNonPrimary"
	ActionRemovePrimary       = "selection.removePrimary"
	ActionSurroundingPair     = "selection.surroundingPair"
	ActionSurround            = "selection.surround"
)

const (
	ActionInsert      = "edit.insert"
	ActionDelete      = "edit.delete"
	ActionBackspace   = "edit.backspace"
	ActionCut         = "edit.cut"
	ActionCopy        = "edit.copy"
	ActionPaste       = "edit.paste"
	ActionAddSurround = "edit.addSurround"
	ActionUndo        = "edit.undo"
	ActionRedo        = "edit.redo"
)

const (
	ActionCenter      = "view.center"
	ActionScrollUp    = "view.scrollUp"
	ActionScrollDown  = "view.scrollDown"
	ActionScrollLeft  = "view.scrollLeft"
	ActionScrollRight = "view.scrollRight"
)

const (
	ActionModePush = "mode.push"
	ActionModePop  = "mode.pop"

	ActionUtilInsert    = "util.insert"
	ActionUtilBackspace = "util.backspace"
	ActionUtilAccept    = "util.accept"
	ActionUtilCancel    = "util.cancel"

	ActionSave      = "file.save"
	ActionQuit      = "file.quit"
	ActionForceQuit = "file.forceQuit"
)
