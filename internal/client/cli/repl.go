package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

const helpText = `Available commands:
  list                              show entries
  post [text]                       new entry
  image <path> [caption]            new entry with an image
  reply <entryID> [text]            reply to an entry
  edit <entryID> [replyID]          change text
  delete <entryID>                  delete an entry
  delete-reply <entryID> <replyID>  delete a reply
  clear                             delete everything
  markdown                          print as Markdown
  export                            write a zip archive
  usage                             storage usage
  exit | quit                       leave
`

// repl reads one command per line and dispatches it. Command errors are
// printed and the loop continues; it ends on exit, EOF or ctx cancellation.
func (a *App) repl(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if interactive() {
			a.printf("%s", a.prompt())
		}

		line, err := readLine(a.reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		if cmd == "exit" || cmd == "quit" {
			a.printf("Bye!\n")
			return nil
		}

		if err := a.dispatch(ctx, cmd, rest); err != nil {
			a.logger.Debug(ctx, "command failed", "cmd", cmd, "error", err)
			a.printf("Error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd, args string) error {
	switch cmd {
	case "help":
		a.printf("%s", helpText)
		return nil
	case "list", "l":
		return a.list()
	case "post":
		return a.post(args)
	case "image":
		return a.image(args)
	case "reply":
		return a.reply(args)
	case "edit":
		return a.edit(args)
	case "delete":
		return a.delete(args)
	case "delete-reply":
		return a.deleteReply(args)
	case "clear":
		return a.clear()
	case "markdown":
		return a.markdown()
	case "export":
		return a.export()
	case "usage":
		return a.usage(ctx)
	default:
		a.printf("Unknown command: %s\n", cmd)
		return nil
	}
}
