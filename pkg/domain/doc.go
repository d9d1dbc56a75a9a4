/*
Package domain contains the core domain models and business logic for the Winnow solver.

It defines the fundamental value objects of the guessing game: Words, per-letter
feedback Marks and Patterns, and the two-pass feedback evaluation that handles
duplicate letters correctly. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Word: A fixed-length, lower-case puzzle word.
  - Mark / Pattern: Per-position feedback (Correct, Present, Absent) for one guess.
  - Evaluate: Compares a guess against a solution, count-aware for duplicates.
  - Record / History: What was guessed and what it did to the candidate set.
  - Result: The terminal outcome of a full solve.
*/
package domain
