/*
Package observability aggregates solver outcomes across many games.

It backs the bench command: concurrent workers record finished games as
they complete, and the aggregate reads out the win rate, the guess
histogram, and the words the solver missed.
*/
package observability
