// Package docinv builds flat content inventories of documentation sites.
// It crawls a product landing page, extracts the category structure and
// every guide's headings with their HTML anchors, and flattens the result
// into hierarchical CSV rows with column inheritance.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package docinv
