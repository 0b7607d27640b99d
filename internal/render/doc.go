// Package render paints milestone bars. It maps the gradient and label
// geometry computed by package milestone onto HTML markup, a styled
// terminal line, or JSON; no layout math happens here.
package render
