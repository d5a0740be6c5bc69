// Package resources contains functions to prepare paths for the files the
// program keeps between sessions. Currently that is only the geometry of the
// ebiten window.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// For builds with the "release" build tag, the path returned by JoinPath() is
// rooted in the user's configuration directory. On modern Linux systems the
// full path would be something like:
//
//	/home/user/.config/pong13h/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.pong13h
package resources
