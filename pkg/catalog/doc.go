// Package catalog loads screen definitions from JSON or YAML files into a
// Store. The default catalog ships embedded: one file per topic screen
// (checkboxes, toggles, tabs, popovers, sheets, steppers, text fields and
// videos). Lookups that miss can ask the store for the closest screen id.
package catalog
