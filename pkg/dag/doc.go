// Package dag provides the directed course graph behind rendering and
// catalog checks.
//
// # Overview
//
// Each course is a node; each resolvable prerequisite or corequisite
// reference is an edge pointing from the course to the course it requires.
// [FromRegistry] builds the graph from a catalog registry and hands back the
// references it could not resolve instead of failing:
//
//	g, dangling := dag.FromRegistry(catalog.Default())
//	g.Children("ELG4176", dag.EdgePrerequisite) // [ELG3175 ELG3126]
//	g.Parents("ELG3125", dag.EdgePrerequisite)  // courses that require it
//
// # Cycles
//
// Catalog data is not trusted to be acyclic. [DAG.FindCycle] returns one
// prerequisite cycle (self-loops included) and [DAG.Validate] turns that into
// [ErrGraphHasCycle]. Relationship queries in package relation do not depend
// on the graph being acyclic; they are bounded by construction.
//
// # Ordering
//
// Nodes, edges, children and parents are all returned in insertion order,
// which for [FromRegistry] is catalog declaration order followed by each
// course's list order.
//
// # Concurrency
//
// A DAG is not safe for concurrent mutation. Once built, concurrent reads
// are safe.
package dag
