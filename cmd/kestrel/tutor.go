package main

import "github.com/MakeNowJust/heredoc"

// tutorial is the text opened by --tutor.
var tutorial = heredoc.Doc(`
	Welcome to kestrel
	==================

	This buffer is not tied to a file. Edit it freely; nothing is saved
	unless you give it a name with ":w <path>".

	1. Moving
	   The arrow keys move every cursor. Ctrl-Left and Ctrl-Right jump by
	   word. Home and End go to the start and end of the line. Ctrl-Home
	   and Ctrl-End go to the start and end of the buffer.

	2. Selecting
	   Hold Shift with any motion to extend the selections. Ctrl-L selects
	   the line and Ctrl-A selects everything. Alt-; flips a selection.

	3. More cursors
	   Alt-Up and Alt-Down add a cursor above or below. Ctrl-N and Ctrl-P
	   pick the next or previous cursor as primary, and Alt-X removes the
	   primary one. Escape drops every cursor but the primary.
	   Try it: put the cursor on the "x" below, press Alt-Down twice and type.

	   x
	   x
	   x

	4. Finding
	   Ctrl-F searches inside the selections as you type. Enter keeps the
	   matches as selections and Escape restores what you had. Ctrl-R splits
	   the selections on a pattern instead.

	5. Surrounding
	   Ctrl-T then a character wraps every selection, so "(" gives "(text)".
	   Ctrl-O then "p" selects the pair around each cursor.

	6. Editing
	   Ctrl-X, Ctrl-C and Ctrl-V cut, copy and paste. Ctrl-Z undoes and
	   Ctrl-Y redoes. Ctrl-G jumps to a line.

	7. Commands
	   Ctrl-E opens the command line:
	     :w [path]   save
	     :q          quit, refusing when there are unsaved changes
	     :q!         quit anyway
	     :wq or :x   save and quit
	     :diff       show what changed since the last save
	     :42         go to line 42

	8. Viewing
	   Ctrl-W scrolls the view without moving the cursors. Escape returns.

	Press Ctrl-Q to quit.
`)
