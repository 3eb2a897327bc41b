// Package highlight classifies courses relative to a focal course.
//
// Given a focal course and a candidate, a [Classifier] returns exactly one
// [Category]. Checks run in a fixed order and the first match wins, so a
// course that satisfies several relations is always shown as the most
// direct one:
//
//  1. no focal course: [None]
//  2. same course: [Self]
//  3. direct prerequisite of the focal course: [Prerequisite]
//  4. corequisite of the focal course: [Corequisite]
//  5. lists the focal course as a prerequisite: [Dependent]
//  6. indirect prerequisite of the focal course: [IndirectPrerequisite]
//  7. otherwise: [None]
//
// # Focus
//
// Which course is focal is decided by a [Focus] value owned by the caller.
// A Focus tracks a transient hover target and an optional lock; the lock
// wins while set. Every Focus method returns a new value, so an event loop
// (such as a terminal UI) can replace its focus on each input without
// locking:
//
//	f := highlight.Focus{}.Hover("ELG2138").Toggle() // lock ELG2138
//	f = f.Hover("MAT1320")                           // ignored while locked
//	id, _ := f.Effective()                           // "ELG2138"
//
// # Styles
//
// [Category.Style] and [Legend] expose the fill and border colors used by
// every presentation surface, so the terminal, Graphviz and HTTP outputs
// agree.
package highlight
