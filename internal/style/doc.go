// Package style provides color values and the theme that resolves
// semantic color tags from demo scripts to concrete display colors.
package style
