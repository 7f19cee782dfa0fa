// Package template holds the two built-in prompt templates and the
// renderer that substitutes user-supplied field values into them.
//
// Templates are constant data defined at process start; there is no
// mutation API. Rendering is a pure function: placeholder markers are
// replaced verbatim by field values, with the field set required to
// match the template's placeholder set exactly.
package template
