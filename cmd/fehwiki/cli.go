package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/fehwiki"
	"github.com/fwojciec/fehwiki/lookup"
)

// PageCache is the page store behind the wiki fetcher.
type PageCache interface {
	ClearDocuments(ctx context.Context) (int64, error)
}

// Lookuper resolves and assembles queries.
type Lookuper interface {
	LookupAll(ctx context.Context, user *fehwiki.User, queries []string, progress lookup.ProgressFunc) []lookup.Result
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Lookup   Lookuper
	Resolver fehwiki.NameResolver
	Roster   fehwiki.RosterSource
	Aliases  fehwiki.AliasService
	Families fehwiki.FamilyService
	Cache    PageCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to the config file" type:"path" env:"FEHWIKI_CONFIG"`
	DB      string `help:"Path to the SQLite database" type:"path"`
	Verbose bool   `short:"v" help:"Log requests and timings to stderr"`

	Lookup LookupCmd `cmd:"" default:"withargs" help:"Look up heroes, weapons and skills"`
	Roster RosterCmd `cmd:"" help:"List heroes by level 40 stats"`
	Alias  AliasCmd  `cmd:"" help:"Manage name aliases"`
	Family FamilyCmd `cmd:"" help:"Manage your son and waifu"`
	Cache  CacheCmd  `cmd:"" help:"Manage the page cache"`
}

// UserFlags identify the person running a command.
type UserFlags struct {
	User     string `name:"user" help:"User ID for son and waifu lookups" env:"FEHWIKI_USER"`
	UserName string `name:"user-name" help:"Legacy user name to migrate bindings from"`
}

// user returns the user the flags describe, or nil if no ID is set.
func (f UserFlags) user() *fehwiki.User {
	if f.User == "" {
		return nil
	}
	return &fehwiki.User{ID: f.User, Name: f.UserName}
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	UserFlags `embed:""`
	Names []string `arg:"" help:"Names to look up"`
}

// RosterCmd is the "roster" subcommand.
type RosterCmd struct {
	Filter []string `short:"f" sep:" " help:"Filter tokens, e.g. 'red sword atk>40'"`
	Sort   []string `short:"s" sep:" " help:"Sort keys, e.g. 'hp+atk spd'"`
	Limit  int      `short:"n" default:"10" help:"Maximum number of heroes to show (0 for all)"`
}

// AliasCmd groups the alias subcommands.
type AliasCmd struct {
	Add    AliasAddCmd    `cmd:"" help:"Add or replace an alias"`
	Remove AliasRemoveCmd `cmd:"" help:"Remove an alias"`
	List   AliasListCmd   `cmd:"" help:"List aliases"`
}

// AliasAddCmd is the "alias add" subcommand.
type AliasAddCmd struct {
	Alias string `arg:"" help:"Alternative name"`
	Title string `arg:"" help:"Wiki page title"`
}

// AliasRemoveCmd is the "alias remove" subcommand.
type AliasRemoveCmd struct {
	Alias string `arg:"" help:"Alternative name"`
}

// AliasListCmd is the "alias list" subcommand.
type AliasListCmd struct {
	Title  string `help:"Only aliases for this page title"`
	Limit  int    `help:"Maximum number of aliases"`
	Offset int    `help:"Number of aliases to skip"`
}

// FamilyCmd is the "family" subcommand.
type FamilyCmd struct {
	UserFlags `embed:""`
	Relation string `arg:"" enum:"son,waifu" help:"Relation (son or waifu)"`
	Name     string `arg:"" help:"Hero name"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove all cached pages"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
