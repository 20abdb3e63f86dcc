// Command contactdemo exercises the address book end to end: it builds
// a book, adds two contacts, edits and looks up phones, deletes a
// contact and drains the change journal.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vortex-fintech/addressbook/book"
	"github.com/vortex-fintech/addressbook/contact"
	"github.com/vortex-fintech/addressbook/contactutil"
	"github.com/vortex-fintech/addressbook/errors"
	"github.com/vortex-fintech/addressbook/logger"
	"github.com/vortex-fintech/addressbook/piiutil"
)

var version = "dev"

// CLI is the top-level command structure for contactdemo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" default:"1" help:"Run the demo scenario."`
}

// DemoCmd runs the canonical John/Jane scenario.
type DemoCmd struct {
	Env  string `help:"Logger environment (development, debug, production)." default:"development"`
	Mask bool   `help:"Mask phone numbers in log output." default:"true" negatable:""`
}

func (c *DemoCmd) Run() error {
	log := logger.Init("contactdemo", c.Env)
	defer log.SafeSync()

	phone := func(v string) string {
		if c.Mask {
			return piiutil.MaskPhone(v)
		}
		return v
	}

	b := book.New()

	john, err := contact.NewRecord("John")
	if err != nil {
		return err
	}
	// free-form input is cleaned up before hitting the strict validator
	for _, raw := range []string{"123-456-7890", "5555555555"} {
		n := contactutil.NormalizeDigits(raw)
		if err := john.AddPhone(n); err != nil {
			return err
		}
		log.Infow("phone added", "contact", "John", "phone", phone(n))
	}
	b.Add(john)

	jane, err := contact.NewRecord("Jane")
	if err != nil {
		return err
	}
	if err := jane.AddPhone("9876543210"); err != nil {
		return err
	}
	b.Add(jane)

	fmt.Println(b)

	found, ok := b.Find("John")
	if !ok {
		return errors.NotFoundWith("contact", "John")
	}
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	log.Infow("phone edited", "contact", "John",
		"old", phone("1234567890"), "new", phone("1112223333"))

	if p, ok := found.FindPhone("5555555555"); ok {
		fmt.Printf("%s: %s\n", found.Name(), p)
	}

	// a malformed number is rejected and rendered as a validation response
	if err := found.AddPhone("not-a-phone"); err != nil {
		log.Warnw("rejected phone", "response", errors.ConvertDomainToValidation(err).ToString())
	}

	b.Delete("Jane")
	fmt.Println(b)

	for _, e := range b.Events().Pull() {
		log.Debugw("journal", "event", e.EventName(), "at", e.OccurredAt(), "id", e.EventID())
	}

	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
