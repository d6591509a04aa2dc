// Package dispatcher routes named actions to the editor operations that
// implement them.
//
// Actions are dotted names such as "cursor.moveLeft" or "edit.insert", plus
// a repeat count and an optional text argument. Dispatch is the single
// entry point the event loop calls for every decoded key.
//
// # Routing
//
// Two tiers, checked in order:
//
//  1. Registry: exact action names. Several handlers may share a name; the
//     highest priority wins.
//  2. Namespace router: the prefix before the first dot picks a
//     NamespaceHandler ("cursor", "selection", "edit", "view", "mode",
//     "util", "file").
//
// # Execution
//
// When an action is dispatched:
//
//  1. The handler is found, or ErrNoHandler is returned
//  2. The handler runs against the Application (with optional panic recovery)
//  3. If the selections changed, the view follows the primary cursor
//  4. Timing is recorded in the dispatcher's and the application's metrics
//  5. Post-dispatch hooks see the action and its error
//
// # Usage
//
//	d := dispatcher.New(application, dispatcher.DefaultConfig())
//	if err := d.Dispatch(dispatcher.Action{Name: dispatcher.ActionMoveDown, Count: 3}); err != nil {
//	    application.ReportError(err)
//	}
package dispatcher
