/*
Package ports defines the driven ports (interfaces) for the winnow solver.

These interfaces decouple the core logic from external implementations,
allowing the solver to work with various opening-book backends.

# Key Interfaces

  - OpeningBook: Responsible for caching first-guess recommendations per dictionary.
*/
package ports
