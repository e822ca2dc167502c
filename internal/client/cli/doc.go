// Package cli provides the interactive journal shell.
//
// The shell initializes the journal, prints a notice when it runs in
// degraded mode, and then reads commands line by line until the user types
// exit or input ends. Rejected operations are reported through a change
// subscription, so the message a user sees comes from the same place as the
// log line.
//
// Commands:
//
//	help                             show this list
//	list                             print entries with their replies
//	post [text]                      post a new entry; prompts when text is omitted
//	image <path> [caption]           post an image from a file
//	reply <entryID> [text]           reply to an entry
//	edit <entryID> [replyID]         replace the text of an entry or reply
//	delete <entryID>                 delete an entry and its replies
//	delete-reply <entryID> <replyID> delete a single reply
//	clear                            delete everything (asks for confirmation)
//	markdown                         print the journal as Markdown
//	export                           write a zip archive to the export directory
//	usage                            show storage usage
//	exit | quit                      leave the shell
package cli
