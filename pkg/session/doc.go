/*
Package session implements identifier-keyed session management for live
solver games.

It provides a generic manager for handling concurrent access to in-memory
sessions, with per-session locking so that slow operations on one game
never block the others.
*/
package session
