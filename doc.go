// Package tuft renders a Mustache-subset template against a
// hierarchical context value (the shapes a JSON decoder produces:
// nil, bool, number, string, []interface{} and
// map[string]interface{}).
//
// Supported tags, with the default "{{" and "}}" delimiters:
//
//	{{name}}    escaped variable substitution
//	{{{name}}}  unescaped substitution (default delimiters only)
//	{{&name}}   unescaped substitution
//	{{#name}}   section: rendered per truthy value / array element
//	{{^name}}   inverted section: rendered iff the value is falsy
//	{{/name}}   closes a section
//	{{!text}}   comment, reproduced verbatim in the output
//	{{.}}       the current context element itself
//
// Rendering is a pure function of (template, context, options); the
// context value is never mutated and may be shared across calls.
// Custom delimiters are supported via Options, in which case the
// triple-mustache form has no special meaning.
package tuft
