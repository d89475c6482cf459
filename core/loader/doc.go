// Package loader wires self-contained features into the Fiber app.
//
// A feature owns its routes and decides at start-up whether it can run:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers sync, users, health and export with a Manager
// and calls LoadAll. Disabled features are logged and skipped; users, for
// instance, stays unmounted when the user database cannot be opened. Features
// load in registration order and the first Load error stops start-up.
package loader
