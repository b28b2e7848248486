package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"chatsphere/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps the persisted state tree without going through the application:
// handy to check what actually reached the durable slot.
func main() {
	dbPath := flag.String("db", "chatsphere.db", "Path to badger DB")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	var raw []byte
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("chatsphere_state"))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		log.Fatal("No state found: ", err)
	}

	var state domain.State
	if err = json.Unmarshal(raw, &state); err != nil {
		log.Fatal("State blob is unparseable: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "ID", "Name", "Owner", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, u := range state.Users {
		table.Append([]string{"user", fmt.Sprintf("%d", u.ID), u.Username, "", ""})
	}
	for _, s := range state.Spheres {
		table.Append([]string{"sphere", fmt.Sprintf("%d", s.ID), s.Name, fmt.Sprintf("%d", s.OwnerID), s.IconURL})
		for _, c := range s.Channels {
			table.Append([]string{"channel", fmt.Sprintf("%d", c.ID), "#" + c.Name, "", fmt.Sprintf("%d messages", len(c.Messages))})
		}
	}
	table.Render()

	if state.CurrentUser != nil {
		fmt.Printf("\nSession: %s", state.CurrentUser.Username)
		if state.CurrentSphereID != nil {
			fmt.Printf(" sphere=%d", *state.CurrentSphereID)
		}
		if state.CurrentChannelID != nil {
			fmt.Printf(" channel=%d", *state.CurrentChannelID)
		}
		fmt.Println()
	}
}
