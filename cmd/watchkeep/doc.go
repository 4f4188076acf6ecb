// Command watchkeep is the menu-driven media watchlist manager CLI. Each
// subcommand is one short-lived user action against the shared watchlist
// document.
package main
