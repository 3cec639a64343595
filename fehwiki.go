// Package fehwiki turns Fire Emblem Heroes wiki pages into display records
// and normalizes roster filter/sort tokens into typed query criteria.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package fehwiki
