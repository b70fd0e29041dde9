// Package cmd/barman provides the barman POS terminal CLI.
//
// Install once:
//
//	go install github.com/shashiranjanraj/barman/cmd/barman@latest
//
// Then point it at the POS service (SERVER_URL, .env, or --server) and run:
//
//	barman tables              # floor overview
//	barman menu --category=BEVERAGES
//	barman order --table=5     # the table's active order
//	barman order:add 5 <menu-item-id> 2
//	barman bill --table=5
//	barman bill:settle --table=5
//	barman dashboard --date=2026-08-30
//	barman session --table=5   # interactive counter session
//
// One-shot commands print tabwriter tables to stdout; the session command
// keeps an order open across prompts and can expose /metrics while running.
package main
