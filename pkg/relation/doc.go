// Package relation derives course relationships from a catalog registry.
//
// A [Resolver] answers four questions about a course:
//
//   - which courses must be completed first ([Resolver.DirectPrerequisites])
//   - which courses are taken alongside it ([Resolver.DirectCorequisites])
//   - which courses sit one step further upstream ([Resolver.IndirectPrerequisites])
//   - which courses list it as a prerequisite ([Resolver.Dependents])
//
// All queries are pure reads over an immutable registry. Unknown course IDs
// and references that do not resolve produce empty or shortened results,
// never errors, so callers can always render a best-effort view of
// imperfect catalog data.
//
// # Indirect prerequisites
//
// Indirect prerequisites are the prerequisites of the direct prerequisites,
// minus anything that is already a direct prerequisite, de-duplicated in
// first-seen order. The walk stops after exactly two hops: a course three or
// more steps upstream is never reported. Because the depth is fixed,
// self-references and cycles in the data cannot cause unbounded work.
package relation
