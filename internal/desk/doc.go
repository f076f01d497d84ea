// Package desk implements the circulation desk shell: a line-oriented
// command interpreter over a catalog.
//
// Lines are split into words with shell-style quoting and dispatched through
// a cobra command tree. Commands missing arguments prompt for them through
// the LineSource; a blank answer to a required prompt cancels the command.
// The same LineSource abstraction backs both the readline terminal and
// non-interactive scripts piped on stdin. Table renderers are exported for
// the one-shot CLI commands.
package desk
