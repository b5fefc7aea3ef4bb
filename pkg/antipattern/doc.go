// Package antipattern holds deliberately inaccessible renditions of the
// controls in package a11y. They back the "bad example" half of each catalog
// screen: each one looks like its compliant counterpart on screen but exposes
// a broken or incomplete accessibility projection. Every type satisfies
// a11y.Element so screens, renderers and the audit handle them uniformly.
package antipattern
