package dispatcher

import (
	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/input/mode"
)

func selectionHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("selection")
	h.Register(ActionExtendLeft, counted((*app.Application).ExtendSelectionLeft))
	h.Register(ActionExtendRight, counted((*app.Application).ExtendSelectionRight))
	h.Register(ActionExtendUp, counted((*app.Application).ExtendSelectionUp))
	h.Register(ActionExtendDown, counted((*app.Application).ExtendSelectionDown))
	h.Register(ActionExtendWordForward, plain((*app.Application).ExtendSelectionWordBoundaryForward))
	h.Register(ActionExtendWordBackward, plain((*app.Application).ExtendSelectionWordBoundaryBackward))
	h.Register(ActionExtendLineStart, plain((*app.Application).ExtendSelectionLineStart))
	h.Register(ActionExtendLineEnd, plain((*app.Application).ExtendSelectionLineEnd))
	h.Register(ActionExtendHome, plain((*app.Application).ExtendSelectionHome))
	h.Register(ActionExtendDocumentStart, plain((*app.Application).ExtendSelectionDocumentStart))
	h.Register(ActionExtendDocumentEnd, plain((*app.Application).ExtendSelectionDocumentEnd))
	h.Register(ActionSelectLine, plain((*app.Application).SelectLine))
	h.Register(ActionSelectAll, plain((*app.Application).SelectAll))
	h.Register(ActionCollapseToCursor, plain((*app.Application).CollapseSelectionToCursor))
	h.Register(ActionCollapseToAnchor, plain((*app.Application).CollapseSelectionToAnchor))
	h.Register(ActionFlipDirection, plain((*app.Application).FlipSelectionDirection))
	h.Register(ActionAddAbove, plain((*app.Application).AddSelectionAbove))
	h.Register(ActionAddBelow, plain((*app.Application).AddSelectionBelow))
	h.Register(ActionNextPrimary, plain((*app.Application).IncrementPrimarySelection))
	h.Register(ActionPreviousPrimary, plain((*app.Application).DecrementPrimarySelection))
	h.Register(ActionClearNonPrimary, plain((*app.Application).ClearNonPrimarySelections))
	h.Register(ActionRemovePrimary, plain((*app.Application).RemovePrimarySelection))
	h.Register(ActionSurroundingPair, leaving(mode.Object, (*app.Application).SelectNearestSurroundingPair))
	h.Register(ActionSurround, leaving(mode.Object, (*app.Application).SelectSurround))
	return h
}

// leaving pops kind if it is the current mode before running f, so an
// error from f is shown over the mode below.
func leaving(kind mode.Kind, f func(*app.Application) error) HandlerFunc {
	return func(a *app.Application, _ Action) error {
		if a.Mode().Kind == kind {
			_ = a.PopMode()
		}
		return f(a)
	}
}
