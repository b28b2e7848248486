package main

import (
	"fmt"
	"io"

	"chatsphere/domain/event"
	"chatsphere/projection"
	"chatsphere/store"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// consoleRenderer plays the role the DOM layer had in the original
// client: it consumes store events and re-derives the display from the
// current state. A MessagePosted event refreshes the message log alone;
// anything else redraws the whole screen.
type consoleRenderer struct {
	store *store.Store
	out   io.Writer
}

func newConsoleRenderer(st *store.Store, out io.Writer) *consoleRenderer {
	return &consoleRenderer{store: st, out: out}
}

func (r *consoleRenderer) Consume(e event.DomainEvent) {
	view := projection.Project(*r.store.State())
	switch e.(type) {
	case event.MessagePosted:
		r.renderMessages(view)
	default:
		r.renderAll(view)
	}
}

// Render draws the full screen, used once at startup before any event
// has fired.
func (r *consoleRenderer) Render() {
	r.renderAll(projection.Project(*r.store.State()))
}

func (r *consoleRenderer) renderAll(view projection.View) {
	if !view.Authenticated {
		color.Fprintln(r.out, "<yellow>Not logged in.</> Use /signup <user> <pass> or /login <user> <pass>.")
		return
	}

	header := fmt.Sprintf(" %s @ %s ", view.Username, view.SphereName)
	fmt.Fprintln(r.out, color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"", "ID", "Sphere", "", "ID", "Channel"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := len(view.Spheres)
	if len(view.Channels) > rows {
		rows = len(view.Channels)
	}
	for i := 0; i < rows; i++ {
		row := []string{"", "", "", "", "", ""}
		if i < len(view.Spheres) {
			s := view.Spheres[i]
			row[0] = activeMark(s.Active)
			row[1] = fmt.Sprintf("%d", s.ID)
			row[2] = s.Name
		}
		if i < len(view.Channels) {
			c := view.Channels[i]
			row[3] = activeMark(c.Active)
			row[4] = fmt.Sprintf("%d", c.ID)
			row[5] = "#" + c.Name
		}
		table.Append(row)
	}
	table.Render()

	r.renderMessages(view)
}

func (r *consoleRenderer) renderMessages(view projection.View) {
	if view.ChannelName != "" {
		color.Fprintln(r.out, fmt.Sprintf("<cyan>── #%s ──</>", view.ChannelName))
	}
	for _, m := range view.Messages {
		fmt.Fprintf(r.out, "%s %s\n", color.New(color.FgMagenta).Render(m.Username+":"), m.Content)
	}
	if view.InputPlaceholder != "" {
		color.Fprintln(r.out, "<gray>"+view.InputPlaceholder+"</>")
	}
}

func activeMark(active bool) string {
	if active {
		return ">"
	}
	return " "
}
