// Package banner builds the help text of a command from its metadata.
//
// A banner has up to three sections, Usage, Commands and Options, each
// omitted when it has nothing to show. Names in the Commands and Options
// sections are aligned in a column and their descriptions wrapped to the
// right of it:
//
//	Usage:
//
//	    $ cork [COMMAND] [FILE ...]
//
//	      Console output helper.
//
//	Commands:
//
//	    > demo   Render a demo
//	    + wrap   Reflow text
//
//	Options:
//
//	    --verbose   Show more output
//
// Command descriptors can be written by hand or taken from a cobra command
// with FromCobra.
package banner
