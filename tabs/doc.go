// Package tabs defines the top-level views of the dashboard. Each tab owns a
// PaneHost for its regions and builds a widget tree from the catalog snapshot.
package tabs
