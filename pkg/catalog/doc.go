// Package catalog holds the course model and the immutable course registry.
//
// # Registry
//
// A [Registry] is built once from a list of [Course] records and never
// modified. It provides O(1) lookup by ID ([Registry.ByID]) and the full list
// in declaration order ([Registry.All]); declaration order drives stable
// groupings such as the year/semester timeline.
//
//	reg := catalog.Default()          // compiled-in program table
//	c, ok := reg.ByID("ELG2138")
//
// Prerequisite and corequisite lists may reference IDs that are not in the
// registry. Such dangling references are legal; relationship queries in
// package relation drop them silently.
//
// # Filtering
//
// [Filter] applies a [Criteria] (search term, year, specialization) to a
// registry and returns matches in registry order:
//
//	circuits := catalog.Filter(reg, catalog.Criteria{Search: "circuit"})
//	year4T := catalog.Filter(reg, catalog.Criteria{Year: 4, Specialization: "T"})
//
// # Files
//
// Catalogs can be loaded from JSON or TOML with [ImportFile] and written with
// [ExportFile]. Loaded records are validated field by field ([Validate]);
// failures carry codes from package errors.
package catalog
