// Package session is the interactive counter mode: one staff member, one
// table, a prompt. It drives the same client operations as the one-shot
// CLI commands but keeps the current order on hand between them.
//
// The order is held in a local variable and threaded through every handler
// as a parameter and return value. Each server response replaces it
// wholesale: if a colleague changed the same order from another terminal,
// whatever the service answered last is what gets rendered (last write
// wins, no client-side conflict detection).
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/app/search"
	"github.com/shashiranjanraj/barman/internal/render"
)

// Session is an interactive run against one table.
type Session struct {
	client      *pos.Client
	tableNumber string
	in          io.Reader
	out         io.Writer
	printer     io.Writer

	// one scanner for the whole session; the settle confirmation reads
	// from it too, so no input is lost between readers
	scanner *bufio.Scanner
}

// New builds a session. printer receives the receipt on settle; pass the
// session output to "print" to screen.
func New(client *pos.Client, tableNumber string, in io.Reader, out, printer io.Writer) *Session {
	return &Session{
		client:      client,
		tableNumber: tableNumber,
		in:          in,
		out:         out,
		printer:     printer,
	}
}

// Run loops on commands until quit, EOF, or context cancellation. Every
// remote failure prints one short line and leaves the last known order
// untouched.
func (s *Session) Run(ctx context.Context) error {
	current, err := s.client.CurrentOrder(ctx, s.tableNumber)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Table %s — type 'help' for commands.\n", s.tableNumber)
	_ = render.Order(s.out, current)

	searcher := search.NewMenuSearcher(s.client, func(res search.Result) {
		if res.Err != nil {
			fmt.Fprintf(s.out, "search failed: %v\n", res.Err)
			return
		}
		_ = render.Menu(s.out, res.Items)
	})
	defer searcher.Close()

	s.scanner = bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "barman:%s> ", s.tableNumber)
		if ctx.Err() != nil || !s.scanner.Scan() {
			return s.scanner.Err()
		}

		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		current = s.dispatch(ctx, searcher, current, cmd, args)
	}
}

// dispatch runs one command and returns the (possibly replaced) order.
func (s *Session) dispatch(ctx context.Context, searcher *search.MenuSearcher, current *models.Order, cmd string, args []string) *models.Order {
	fail := func(err error) *models.Order {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return current // prior state stays
	}

	switch cmd {
	case "help":
		s.help()
		return current

	case "menu":
		category := strings.Join(args, " ")
		items, err := s.client.MenuItems(ctx, pos.MenuQuery{Category: category})
		if err != nil {
			return fail(err)
		}
		_ = render.Menu(s.out, items)
		return current

	case "find":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: find <term> [category]")
			return current
		}
		category := ""
		if len(args) > 1 {
			category = args[1]
		}
		searcher.Query(ctx, args[0], category)
		return current

	case "add":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: add <menu-item-id> [qty]")
			return current
		}
		qty := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				fmt.Fprintln(s.out, "quantity must be a positive integer")
				return current
			}
			qty = n
		}
		ord, err := s.client.PlaceItem(ctx, s.tableNumber, current,
			pos.ItemInput{MenuItemID: args[0], Quantity: qty})
		if err != nil {
			return fail(err)
		}
		_ = render.Order(s.out, ord)
		return ord

	case "qty":
		if len(args) != 2 || current == nil {
			fmt.Fprintln(s.out, "usage: qty <menu-item-id> <n>  (needs an active order)")
			return current
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(s.out, "quantity must be an integer")
			return current
		}
		ord, err := s.client.UpdateItemQuantity(ctx, current.ID, args[0], n)
		if err != nil {
			return fail(err)
		}
		_ = render.Order(s.out, ord)
		return ord

	case "rm":
		if len(args) != 1 || current == nil {
			fmt.Fprintln(s.out, "usage: rm <menu-item-id>  (needs an active order)")
			return current
		}
		ord, err := s.client.RemoveItem(ctx, current.ID, args[0])
		if err != nil {
			return fail(err)
		}
		_ = render.Order(s.out, ord)
		return ord

	case "order":
		_ = render.Order(s.out, current)
		return current

	case "bill":
		if current == nil {
			fmt.Fprintln(s.out, "No active order.")
			return current
		}
		_ = render.Bill(s.out, *current)
		return current

	case "settle":
		if current == nil {
			fmt.Fprintln(s.out, "No active order.")
			return current
		}
		res, err := s.client.Settle(ctx, *current, s.printer, s.confirmAfterPrintFailure)
		if err != nil {
			return fail(err)
		}
		if !res.Printed {
			fmt.Fprintln(s.out, "warning: receipt did not print")
		}
		fmt.Fprintf(s.out, "Bill settled for table %s.\n", s.tableNumber)
		return nil // session over for this order

	case "status":
		if len(args) != 1 || current == nil {
			fmt.Fprintln(s.out, "usage: status <PLACED|IN_KITCHEN|SERVED|BILLED|COMPLETED|CANCELLED>")
			return current
		}
		ord, err := s.client.UpdateStatus(ctx, current.ID, models.OrderStatus(strings.ToUpper(args[0])))
		if err != nil {
			return fail(err)
		}
		_ = render.Order(s.out, ord)
		if ord.Status.Terminal() {
			return nil
		}
		return ord

	case "cancel":
		if current == nil {
			fmt.Fprintln(s.out, "No active order.")
			return current
		}
		ord, err := s.client.UpdateStatus(ctx, current.ID, models.StatusCancelled)
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(s.out, "Order %s cancelled.\n", ord.ID)
		return nil

	default:
		fmt.Fprintf(s.out, "unknown command %q — type 'help'\n", cmd)
		return current
	}
}

// confirmAfterPrintFailure asks whether to settle anyway when the receipt
// could not be printed.
func (s *Session) confirmAfterPrintFailure(printErr error) bool {
	fmt.Fprintf(s.out, "receipt failed to print (%v); settle without a copy? [y/N] ", printErr)
	if !s.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (s *Session) help() {
	fmt.Fprint(s.out, `commands:
  menu [category]        list menu items
  find <term> [category] debounced menu search
  add <item-id> [qty]    add to the order (creates one if needed)
  qty <item-id> <n>      change a line's quantity (0 removes)
  rm <item-id>           remove a line
  order                  show the current order
  bill                   show the bill breakdown
  settle                 print the receipt and mark the order BILLED
  status <STATUS>        ask the service for a status transition
  cancel                 cancel the order
  quit                   leave the session
`)
}
